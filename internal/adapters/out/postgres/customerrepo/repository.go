package customerrepo

import (
	"context"
	"errors"

	"orderentry/internal/core/domain/model/customer"
	"orderentry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerDirectory using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer profile.
func (r *GormCustomerRepository) Add(ctx context.Context, c customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetCustomer retrieves the profile for the given customer id.
func (r *GormCustomerRepository) GetCustomer(ctx context.Context, customerID int64) (customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.Customer{}, errs.NewObjectNotFoundError("customer", customerID)
		}
		return customer.Customer{}, err
	}

	return toDomain(dto)
}
