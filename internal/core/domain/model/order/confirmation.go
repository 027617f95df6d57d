package order

import (
	"errors"
	"fmt"

	"orderentry/internal/pkg/errs"
	"orderentry/internal/pkg/guard"
)

// ErrConfirmationIsNotConstructed is returned when validating a zero-value
// Confirmation.
var ErrConfirmationIsNotConstructed = errors.New(
	"Confirmation must be created via NewConfirmation constructor")

// Confirmation is the fulfillment service's receipt for a dispatched order:
// an order identifier and a human-readable order number. The workflow treats
// it as opaque beyond these two fields.
type Confirmation struct {
	orderID     int64
	orderNumber string

	guard guard.ConstructorGuard
}

// NewConfirmation creates a Confirmation with a positive order id and a
// non-empty order number.
func NewConfirmation(orderID int64, orderNumber string) (Confirmation, error) {
	c := Confirmation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setOrderID(orderID),
		c.setOrderNumber(orderNumber),
	); err != nil {
		return Confirmation{}, err
	}

	return c, nil
}

// OrderID returns the fulfillment-assigned order identifier.
func (c Confirmation) OrderID() int64 {
	return c.orderID
}

// OrderNumber returns the human-readable order number.
func (c Confirmation) OrderNumber() string {
	return c.orderNumber
}

// Validate checks that the Confirmation was properly constructed.
func (c Confirmation) Validate() error {
	return c.guard.Validate(ErrConfirmationIsNotConstructed)
}

func (c *Confirmation) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *Confirmation) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}
