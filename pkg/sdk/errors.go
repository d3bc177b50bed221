package hbnb

import "github.com/kailas-cloud/hbnb/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrMalformedRequest = domain.ErrMalformedRequest
	ErrInvalidField     = domain.ErrInvalidField
)

// MissingFieldError reports a required field left empty.
type MissingFieldError = domain.MissingFieldError
