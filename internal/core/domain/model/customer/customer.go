// Package customer provides the customer profile resolved from the customer
// directory during order placement. Only the location takes part in the tax
// computation; the remaining fields are contact and display data.
package customer

import (
	"errors"
	"fmt"

	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/pkg/errs"
	"orderentry/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an immutable customer profile. The id, name, email, and
// location are required; address line, city, and state/province are optional
// display fields.
type Customer struct {
	id              int64
	name            string
	email           string
	addressLine1    string
	city            string
	stateOrProvince string
	location        kernel.Location

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with a positive id, non-empty name and
// email, and a validated location.
func NewCustomer(
	id int64,
	name string,
	email string,
	addressLine1 string,
	city string,
	stateOrProvince string,
	location kernel.Location,
) (Customer, error) {
	c := Customer{
		addressLine1:    addressLine1,
		city:            city,
		stateOrProvince: stateOrProvince,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setLocation(location),
	); err != nil {
		return Customer{}, err
	}

	return c, nil
}

// ID returns the customer's unique identifier.
func (c Customer) ID() int64 {
	return c.id
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email address.
func (c Customer) Email() string {
	return c.email
}

// AddressLine1 returns the first street address line, which may be empty.
func (c Customer) AddressLine1() string {
	return c.addressLine1
}

// City returns the customer's city, which may be empty.
func (c Customer) City() string {
	return c.city
}

// StateOrProvince returns the customer's state or province, which may be empty.
func (c Customer) StateOrProvince() string {
	return c.stateOrProvince
}

// Location returns the postal code and country used to resolve tax entries.
func (c Customer) Location() kernel.Location {
	return c.location
}

// Validate checks that the Customer was properly constructed.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
