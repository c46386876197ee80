package service

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError carries every violated rule at once so the caller can fix
// all of them in a single round trip.
type ValidationError struct {
	Violations []string
}

func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
