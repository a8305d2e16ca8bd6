package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrInvalidInput indicates that the request payload is missing the text to summarize.
	// The message is returned to clients verbatim.
	ErrInvalidInput = errors.New("Invalid input. 'text' field is required.") //nolint:staticcheck // client-facing message

	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
