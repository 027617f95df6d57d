package kernel

import (
	"errors"
	"fmt"

	"orderentry/internal/pkg/errs"
	"orderentry/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when validating a zero-value Location.
// Locations must be created via the NewLocation constructor.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location identifies a customer's tax jurisdiction: a postal code within a
// country. It is an immutable value object used solely to resolve applicable
// tax entries.
//
// Example:
//
//	loc, err := kernel.NewLocation("98168", "USA")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Output: 98168, USA
type Location struct {
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewLocation creates a Location from a postal code and country.
// Both values must be non-empty.
func NewLocation(postalCode string, country string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setPostalCode(postalCode),
		loc.setCountry(country),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// PostalCode returns the postal code.
func (l Location) PostalCode() string {
	return l.postalCode
}

// Country returns the country.
func (l Location) Country() string {
	return l.country
}

// IsEqual compares two Locations by postal code and country.
func (l Location) IsEqual(other Location) bool {
	return l.postalCode == other.postalCode && l.country == other.country
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("%s, %s", l.postalCode, l.country)
}

// Validate checks that the Location was properly constructed.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	l.postalCode = postalCode
	return nil
}

func (l *Location) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	l.country = country
	return nil
}
