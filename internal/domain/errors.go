package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConfiguration = errors.New("configuration error")
	ErrTransport     = errors.New("transport error")
	ErrAPI           = errors.New("api error")
	ErrUpload        = errors.New("upload error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// APIError is returned when the work-management API responds with a
// non-empty errors array in its GraphQL envelope. Terminal for the request;
// callers must not retry.
type APIError struct {
	Label    string
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 1 {
		return fmt.Sprintf("monday %s: %s", e.Label, e.Messages[0])
	}
	return fmt.Sprintf("monday %s: %d errors", e.Label, len(e.Messages))
}

func (e *APIError) Unwrap() error { return ErrAPI }

// UploadError reports a failed attachment upload. Uploads after the failed
// one are aborted; the already-created item is kept as-is.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %q: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() error { return ErrUpload }
