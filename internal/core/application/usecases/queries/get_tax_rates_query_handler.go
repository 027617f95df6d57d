package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTaxRatesQueryHandler reads applicable tax rates from the database.
// An unknown location is not an error: it simply has no applicable rates.
type GetTaxRatesQueryHandler struct {
	db *gorm.DB
}

// NewGetTaxRatesQueryHandler creates a handler for tax rate lookups.
func NewGetTaxRatesQueryHandler(db *gorm.DB) GetTaxRatesQueryHandler {
	return GetTaxRatesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by description for
// consistent output.
func (h GetTaxRatesQueryHandler) Handle(
	ctx context.Context,
	query GetTaxRatesQuery,
) ([]GetTaxRatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rates := make([]GetTaxRatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			description,
			rate
		FROM tax_rates
		WHERE postal_code = ? AND country = ?
		ORDER BY description
	`, query.Location().PostalCode(), query.Location().Country()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rate GetTaxRatesQueryResponse

		if err = rows.Scan(&rate.Description, &rate.Rate); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rates, nil
}
