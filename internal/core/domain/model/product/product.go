// Package product provides the catalog product entity referenced by order
// lines. A product is identified by its SKU and carries the unit price used
// for net-total computation.
package product

import (
	"errors"

	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/pkg/errs"
	"orderentry/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an immutable catalog entry: a SKU, a display name, and a
// non-negative unit price.
//
// Example:
//
//	sku, _ := kernel.NewSKU("WIDGET-42")
//	price, _ := kernel.NewMoney(5.00)
//	p, err := product.NewProduct(sku, "Widget", price)
//	if err != nil {
//	    // handle validation error
//	}
type Product struct {
	sku   kernel.SKU
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with a validated SKU, non-empty name, and
// validated price.
func NewProduct(sku kernel.SKU, name string, price kernel.Money) (Product, error) {
	p := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setSKU(sku),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// SKU returns the product's stable catalog key.
func (p Product) SKU() kernel.SKU {
	return p.sku
}

// Name returns the product's display name.
func (p Product) Name() string {
	return p.name
}

// Price returns the product's unit price.
func (p Product) Price() kernel.Money {
	return p.price
}

// IsEqual compares two products by SKU.
func (p Product) IsEqual(other Product) bool {
	return p.sku.IsEqual(other.sku)
}

// Validate checks that the Product was properly constructed.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) setSKU(sku kernel.SKU) error {
	if err := sku.Validate(); err != nil {
		return err
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
