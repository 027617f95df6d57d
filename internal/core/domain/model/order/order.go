package order

import (
	"errors"
	"fmt"

	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder constructor.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root placed through the workflow. It references a
// customer and holds an ordered collection of items. The aggregate is
// immutable once constructed: placement never mutates it.
//
// Item uniqueness by product and the non-empty item list are business rules
// evaluated during placement validation rather than at construction, so that
// a violating order can be built and rejected with the proper reasons.
type Order struct {
	// customerID references the customer placing the order
	customerID int64

	// items are the order lines in the order the caller supplied them
	items []Item

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order for the given customer. The customer id must be
// positive and every supplied item must have been constructed via NewItem.
// The item slice is copied; callers cannot mutate the aggregate afterwards.
func NewOrder(customerID int64, items []Item) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// CustomerID returns the identifier of the customer placing the order.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemsUniqueByProduct reports whether every item references a distinct
// product SKU. An empty item list is vacuously unique.
func (o *Order) ItemsUniqueByProduct() bool {
	seen := make(map[kernel.SKU]struct{}, len(o.items))
	for _, item := range o.items {
		sku := item.Product().SKU()
		if _, ok := seen[sku]; ok {
			return false
		}
		seen[sku] = struct{}{}
	}
	return true
}

// NetTotal returns the sum of unit price times quantity over all items,
// before tax. Plain float64 arithmetic, no rounding.
func (o *Order) NetTotal() float64 {
	netTotal := 0.0
	for _, item := range o.items {
		netTotal += item.Subtotal()
	}
	return netTotal
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d]", idx), err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
