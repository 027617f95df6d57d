package order

import (
	"errors"
	"fmt"

	"orderentry/internal/core/domain/model/product"
	"orderentry/internal/pkg/errs"
	"orderentry/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a product reference and a positive quantity.
// It is an immutable value object.
type Item struct {
	product  product.Product
	quantity int

	guard guard.ConstructorGuard
}

// NewItem creates an order line for a valid product with a positive quantity.
func NewItem(p product.Product, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProduct(p),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Product returns the referenced product.
func (i Item) Product() product.Product {
	return i.product
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity for this line.
func (i Item) Subtotal() float64 {
	return i.product.Price().Amount() * float64(i.quantity)
}

// Validate checks that the Item was properly constructed.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) setProduct(p product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i.product = p
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
