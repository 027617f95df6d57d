package taxraterepo

import (
	"context"

	"orderentry/internal/core/domain/model/kernel"
	"orderentry/internal/core/domain/model/tax"

	"gorm.io/gorm"
)

// GormTaxRateRepository implements TaxRateLookup using GORM.
type GormTaxRateRepository struct {
	db *gorm.DB
}

// NewGormTaxRateRepository creates a new GORM tax rate repository.
func NewGormTaxRateRepository(db *gorm.DB) *GormTaxRateRepository {
	return &GormTaxRateRepository{db: db}
}

// Add saves a tax rate for the given location.
func (r *GormTaxRateRepository) Add(ctx context.Context, location kernel.Location, entry tax.Entry) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := TaxRateDTO{
		PostalCode:  location.PostalCode(),
		Country:     location.Country(),
		Description: entry.Description(),
		Rate:        entry.Rate(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetTaxEntries returns every tax entry applicable to the location.
// The result is empty for locations with no configured rates.
func (r *GormTaxRateRepository) GetTaxEntries(ctx context.Context, location kernel.Location) ([]tax.Entry, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	var dtos []TaxRateDTO
	err := r.db.WithContext(ctx).
		Order("description").
		Find(&dtos, "postal_code = ? AND country = ?", location.PostalCode(), location.Country()).
		Error
	if err != nil {
		return nil, err
	}

	entries := make([]tax.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
