// Package tax provides the tax entry value object and the grand-total
// computation. A tax entry is one jurisdiction's rule: a description and a
// percentage rate. Zero or more entries apply to a location and their
// contributions are summed.
package tax

import (
	"errors"
	"fmt"

	"orderentry/internal/pkg/errs"
	"orderentry/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when validating a zero-value Entry.
var ErrEntryIsNotConstructed = errors.New("tax Entry must be created via NewEntry constructor")

// Entry is one applicable tax rule. Rate is a percentage, not a fraction:
// an entry with rate 9.0 contributes 9% of the net total.
type Entry struct {
	description string
	rate        float64

	guard guard.ConstructorGuard
}

// NewEntry creates a tax Entry with a non-empty description and a
// non-negative percentage rate.
func NewEntry(description string, rate float64) (Entry, error) {
	e := Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setDescription(description),
		e.setRate(rate),
	); err != nil {
		return Entry{}, err
	}

	return e, nil
}

// Description returns the human-readable name of the tax rule.
func (e Entry) Description() string {
	return e.description
}

// Rate returns the percentage rate (9.0 means 9%).
func (e Entry) Rate() float64 {
	return e.rate
}

// Validate checks that the Entry was properly constructed.
func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	e.description = description
	return nil
}

func (e *Entry) setRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rate",
			fmt.Errorf("%v is not greater than or equal to 0", rate))
	}
	e.rate = rate
	return nil
}

// GrandTotal computes the tax-inclusive total for a net amount: the net total
// plus, for each entry, netTotal * rate / 100. With no entries it returns the
// net total unchanged. Pure float64 arithmetic, no rounding.
func GrandTotal(netTotal float64, entries []Entry) float64 {
	tax := 0.0
	for _, entry := range entries {
		tax += netTotal * (entry.rate / 100)
	}
	return netTotal + tax
}
