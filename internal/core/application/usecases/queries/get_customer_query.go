// Package queries contains read-only operations against the system state.
// Query handlers bypass the domain model and read the database directly,
// returning flat response structures shaped for their callers.
package queries

import (
	"errors"

	"orderentry/internal/pkg/errs"
	"orderentry/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

// GetCustomerQuery retrieves a customer profile by its identifier.
//
// Example:
//
//	query, err := NewGetCustomerQuery(123)
//	if err != nil {
//	    return err
//	}
//
//	customer, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such customer
//	}
type GetCustomerQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for the customer with the given id.
func NewGetCustomerQuery(customerID int64) (GetCustomerQuery, error) {
	if customerID <= 0 {
		return GetCustomerQuery{}, errs.NewValueIsInvalidError("customerID")
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer to retrieve.
func (q GetCustomerQuery) CustomerID() int64 {
	return q.customerID
}

// GetCustomerQueryResponse is the flat customer profile returned to callers.
type GetCustomerQueryResponse struct {
	ID              int64
	Name            string
	Email           string
	AddressLine1    string
	City            string
	StateOrProvince string
	PostalCode      string
	Country         string
}
