package kernel

import (
	"orderentry/internal/pkg/errs"
	"orderentry/internal/pkg/guard"
)

// ErrSKUIsNotConstructed is returned when validating a zero-value SKU.
// SKUs must be created via the NewSKU constructor.
var ErrSKUIsNotConstructed = errs.NewValueIsRequiredError("SKU must be created via NewSKU constructor")

// SKU is the stable catalog key identifying a product (stock-keeping unit).
// It is an immutable value object; the zero value is invalid.
//
// Example:
//
//	sku, err := kernel.NewSKU("WIDGET-42")
//	if err != nil {
//	    // handle validation error
//	}
type SKU struct {
	value string
	guard guard.ConstructorGuard
}

// NewSKU creates a SKU from its string form. The value must be non-empty.
func NewSKU(value string) (SKU, error) {
	if value == "" {
		return SKU{}, errs.NewValueIsRequiredError("sku")
	}

	return SKU{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the catalog key.
func (s SKU) String() string {
	return s.value
}

// IsEqual compares two SKUs by value.
func (s SKU) IsEqual(other SKU) bool {
	return s.value == other.value
}

// Validate checks that the SKU was properly constructed.
func (s SKU) Validate() error {
	return s.guard.Validate(ErrSKUIsNotConstructed)
}
