package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrMalformedRequest signals a request body that is absent or not a JSON object.
	ErrMalformedRequest = errors.New("not a json")
	// ErrInvalidField signals a missing or invalid entity attribute.
	ErrInvalidField = errors.New("invalid field")
)

// MissingFieldError wraps ErrInvalidField with the name of the absent attribute.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrInvalidField }

// NewMissingField creates a missing field error.
func NewMissingField(field string) error {
	return &MissingFieldError{Field: field}
}
