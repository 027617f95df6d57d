// Package customerrepo persists customer profiles and serves as the
// customer directory consulted after fulfillment.
package customerrepo

import (
	"orderentry/internal/core/domain/model/customer"
	"orderentry/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for customer profiles.
type CustomerDTO struct {
	ID              int64 `gorm:"primaryKey"`
	Name            string
	Email           string
	AddressLine1    string
	City            string
	StateOrProvince string
	PostalCode      string
	Country         string
}

// TableName specifies the database table name for customer profiles.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:              c.ID(),
		Name:            c.Name(),
		Email:           c.Email(),
		AddressLine1:    c.AddressLine1(),
		City:            c.City(),
		StateOrProvince: c.StateOrProvince(),
		PostalCode:      c.Location().PostalCode(),
		Country:         c.Location().Country(),
	}
}

func toDomain(dto CustomerDTO) (customer.Customer, error) {
	location, err := kernel.NewLocation(dto.PostalCode, dto.Country)
	if err != nil {
		return customer.Customer{}, err
	}

	return customer.NewCustomer(
		dto.ID,
		dto.Name,
		dto.Email,
		dto.AddressLine1,
		dto.City,
		dto.StateOrProvince,
		location,
	)
}
