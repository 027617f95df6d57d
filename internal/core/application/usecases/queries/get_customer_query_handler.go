package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderentry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerQueryHandler reads customer profiles straight from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for customer lookups.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no customer
// with the requested id exists.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (GetCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	var response GetCustomerQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			address_line1,
			city,
			state_or_province,
			postal_code,
			country
		FROM customers
		WHERE id = ?
	`, query.CustomerID()).Row()

	err := row.Scan(
		&response.ID,
		&response.Name,
		&response.Email,
		&response.AddressLine1,
		&response.City,
		&response.StateOrProvince,
		&response.PostalCode,
		&response.Country,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCustomerQueryResponse{},
			errs.NewObjectNotFoundError("customerID", query.CustomerID())
	}
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	return response, nil
}
