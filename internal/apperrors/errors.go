package apperrors

import (
	"errors"
	"strings"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNotConnected indicates that the document store connection is not established yet.
var ErrNotConnected = errors.New("database not connected")

// ErrConfiguration indicates that a required configuration value is missing or invalid.
var ErrConfiguration = errors.New("configuration error")

// ErrConnectionAttemptsExhausted indicates that the connection manager gave up reconnecting.
var ErrConnectionAttemptsExhausted = errors.New("database connection attempts exhausted")

// ValidationError carries every rule violation found for a single submission.
// errors.Is(err, ErrValidation) holds for any *ValidationError.
type ValidationError struct {
	Details []string
}

// NewValidationError builds a ValidationError from the given messages.
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Details, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ValidationDetails extracts the violation messages from err, if it is a validation failure.
func ValidationDetails(err error) ([]string, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Details, true
	}
	if errors.Is(err, ErrValidation) {
		return []string{err.Error()}, true
	}
	return nil, false
}
