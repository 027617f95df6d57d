package kernel

import (
	"fmt"
	"math"

	"orderentry/internal/pkg/errs"
	"orderentry/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney constructor")

// Money is a non-negative monetary amount. It is an immutable value object
// backed by float64; arithmetic on totals elsewhere in the application uses
// plain float64 with the same semantics.
//
// Example:
//
//	price, err := kernel.NewMoney(19.99)
//	if err != nil {
//	    // handle validation error
//	}
//	subtotal := price.Amount() * 3
type Money struct {
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value. The amount must be finite and non-negative.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than or equal to 0", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the monetary amount.
func (m Money) Amount() float64 {
	return m.amount
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// Validate checks that the Money was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
