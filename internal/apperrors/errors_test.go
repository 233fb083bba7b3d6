package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorUnwrapsToSentinel(t *testing.T) {
	err := NewValidationError("name is required", "term is required")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation error: name is required; term is required", err.Error())
}

func TestValidationDetails(t *testing.T) {
	wrapped := fmt.Errorf("create loan: %w", NewValidationError("currency is required"))

	details, ok := ValidationDetails(wrapped)
	assert.True(t, ok)
	assert.Equal(t, []string{"currency is required"}, details)

	details, ok = ValidationDetails(fmt.Errorf("bad input: %w", ErrValidation))
	assert.True(t, ok)
	assert.Len(t, details, 1)

	_, ok = ValidationDetails(errors.New("boom"))
	assert.False(t, ok)
}
