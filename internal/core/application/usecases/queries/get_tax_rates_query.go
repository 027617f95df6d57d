package queries

import (
	"errors"

	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/pkg/guard"
)

var (
	ErrGetTaxRatesQueryIsNotConstructed = errors.New(
		"GetTaxRatesQuery must be created via NewGetTaxRatesQuery constructor",
	)
)

// GetTaxRatesQuery retrieves the tax rates applicable to a location.
//
// Example:
//
//	query, err := NewGetTaxRatesQuery("98168", "USA")
//	if err != nil {
//	    return err
//	}
//
//	rates, err := handler.Handle(ctx, query)
type GetTaxRatesQuery struct {
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewGetTaxRatesQuery creates a query for the rates at the given location.
func NewGetTaxRatesQuery(postalCode string, country string) (GetTaxRatesQuery, error) {
	location, err := kernel.NewLocation(postalCode, country)
	if err != nil {
		return GetTaxRatesQuery{}, err
	}

	return GetTaxRatesQuery{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTaxRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetTaxRatesQueryIsNotConstructed)
}

// Location returns the location whose rates are requested.
func (q GetTaxRatesQuery) Location() kernel.Location {
	return q.location
}

// GetTaxRatesQueryResponse is a single applicable tax rate.
type GetTaxRatesQueryResponse struct {
	Description string
	Rate        float64
}
