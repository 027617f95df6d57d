// Package taxraterepo persists tax rates keyed by location. A location with
// no rows simply has no applicable taxes.
package taxraterepo

import (
	"orderentry/internal/core/domain/model/tax"
)

// TaxRateDTO represents the database structure for a tax rate at a location.
type TaxRateDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	PostalCode  string `gorm:"index:idx_tax_rates_location"`
	Country     string `gorm:"index:idx_tax_rates_location"`
	Description string
	Rate        float64
}

// TableName specifies the database table name for tax rates.
func (TaxRateDTO) TableName() string {
	return "tax_rates"
}

func toDomain(dto TaxRateDTO) (tax.Entry, error) {
	return tax.NewEntry(dto.Description, dto.Rate)
}
