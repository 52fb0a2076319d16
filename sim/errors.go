package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel matched by every InvalidInputError.
// Use errors.Is(err, ErrInvalidInput) to distinguish caller mistakes from other failures.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a rejected simulation input.
// Field names the offending input ("requests[3]", "head", "disk_size", "policy", "policies")
// and Value carries the rejected value so callers can build an actionable message.
type InvalidInputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) true for any InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(field string, value any, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
