package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/orbit-connect/orbitcore/internal/domain/validation"
)

func TestValidationFailedError(t *testing.T) {
	err := NewValidationFailed([]validation.Error{{Field: "title", Message: "Title is required", Code: "REQUIRED"}})
	wrapped := fmt.Errorf("submit story: %w", err)

	if !errors.Is(wrapped, ErrValidationFailed) {
		t.Error("errors.Is(ErrValidationFailed) = false")
	}
	var vfe *ValidationFailedError
	if !errors.As(wrapped, &vfe) {
		t.Fatal("errors.As failed")
	}
	if len(vfe.Errors) != 1 || vfe.Errors[0].Field != "title" {
		t.Errorf("Errors = %v", vfe.Errors)
	}
	if err.Error() != "validation failed: 1 field error(s)" {
		t.Errorf("Error() = %q", err.Error())
	}
}
