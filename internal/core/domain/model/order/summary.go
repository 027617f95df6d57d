package order

import (
	"errors"

	"orderentry/internal/core/domain/model/tax"
	"orderentry/internal/pkg/guard"
)

// ErrSummaryIsNotConstructed is returned when validating a zero-value Summary.
var ErrSummaryIsNotConstructed = errors.New("Summary must be created via NewSummary constructor")

// Summary is the output of a successful placement: the fulfillment
// confirmation's identifiers, the customer, the applicable tax entries, and
// the computed totals. It is constructed once per placement and never
// mutated afterwards.
type Summary struct {
	confirmation Confirmation
	customerID   int64
	taxes        []tax.Entry
	netTotal     float64
	total        float64

	guard guard.ConstructorGuard
}

// NewSummary assembles the placement summary from the fulfillment
// confirmation, the resolved tax entries, and the computed totals. The
// confirmation must be valid; taxes may be empty.
func NewSummary(
	confirmation Confirmation,
	customerID int64,
	taxes []tax.Entry,
	netTotal float64,
	total float64,
) (Summary, error) {
	if err := confirmation.Validate(); err != nil {
		return Summary{}, err
	}

	copied := make([]tax.Entry, len(taxes))
	copy(copied, taxes)

	return Summary{
		confirmation: confirmation,
		customerID:   customerID,
		taxes:        copied,
		netTotal:     netTotal,
		total:        total,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the fulfillment-assigned order identifier.
func (s Summary) OrderID() int64 {
	return s.confirmation.OrderID()
}

// OrderNumber returns the human-readable order number from the confirmation.
func (s Summary) OrderNumber() string {
	return s.confirmation.OrderNumber()
}

// CustomerID returns the identifier of the customer the order was placed for.
func (s Summary) CustomerID() int64 {
	return s.customerID
}

// Taxes returns a copy of the applicable tax entries.
func (s Summary) Taxes() []tax.Entry {
	taxes := make([]tax.Entry, len(s.taxes))
	copy(taxes, s.taxes)
	return taxes
}

// NetTotal returns the pre-tax total.
func (s Summary) NetTotal() float64 {
	return s.netTotal
}

// Total returns the tax-inclusive grand total.
func (s Summary) Total() float64 {
	return s.total
}

// Validate checks that the Summary was properly constructed.
func (s Summary) Validate() error {
	return s.guard.Validate(ErrSummaryIsNotConstructed)
}
