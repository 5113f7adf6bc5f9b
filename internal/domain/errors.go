package domain

import (
	"errors"
	"fmt"

	"github.com/orbit-connect/orbitcore/internal/domain/validation"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery signals malformed search parameters.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrValidationFailed signals submitted data that failed its schema.
	ErrValidationFailed = errors.New("validation failed")
	// ErrInvalidFixture signals a malformed fixture set.
	ErrInvalidFixture = errors.New("invalid fixture")
)

// ValidationFailedError wraps ErrValidationFailed with the per-field failures.
type ValidationFailedError struct {
	Errors []validation.Error
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%s: %d field error(s)", ErrValidationFailed.Error(), len(e.Errors))
}

func (e *ValidationFailedError) Unwrap() error { return ErrValidationFailed }

// NewValidationFailed creates a validation failure error.
func NewValidationFailed(errs []validation.Error) error {
	return &ValidationFailedError{Errors: errs}
}
