// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// validated value object paired with a handler that performs the workflow.
package commands

import (
	"errors"

	"orderentry/internal/core/domain/model/order"
	"orderentry/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a commercial order:
// validate it against the business rules, dispatch it for fulfillment,
// compute totals, and notify the customer.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(o)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	summary, err := handler.Handle(ctx, cmd)
//	var validationErr *errs.ValidationFailedError
//	if errors.As(err, &validationErr) {
//	    // correct the order and retry
//	}
type PlaceOrderCommand struct {
	order *order.Order

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place the given order.
// The order must have been constructed via order.NewOrder.
func NewPlaceOrderCommand(o *order.Order) (PlaceOrderCommand, error) {
	if err := o.Validate(); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		order: o,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Order returns the order to place.
func (c PlaceOrderCommand) Order() *order.Order {
	return c.order
}
