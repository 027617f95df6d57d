package errs

import (
	"errors"
	"strings"
)

// ErrValidationFailed indicates that an order violated one or more business
// rules before any side effect occurred.
var ErrValidationFailed = errors.New("validation failed")

// ValidationFailedError carries every reason an order was rejected, one
// human-readable string per violated rule, in rule evaluation order. It is
// always recoverable by the caller: correct the order and retry.
type ValidationFailedError struct {
	Reasons []string
}

// NewValidationFailedError creates a ValidationFailedError from the given
// reasons. At least one reason is expected; callers must not raise a
// validation failure without naming the violated rule.
func NewValidationFailedError(reasons ...string) *ValidationFailedError {
	return &ValidationFailedError{Reasons: reasons}
}

func (e *ValidationFailedError) Error() string {
	return sanitize(ErrValidationFailed.Error() + ": " + strings.Join(e.Reasons, " "))
}

func (e *ValidationFailedError) Unwrap() error {
	return ErrValidationFailed
}
