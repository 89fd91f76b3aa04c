package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidItem  = errors.New("invalid item")
)

// FieldError describes a validation error for a specific field.
// Cause optionally classifies the error (ErrDuplicateKey, ErrInvalidItem).
type FieldError struct {
	Field   string
	Message string
	Cause   error
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

// Unwrap exposes ErrValidation and every distinct field cause, so both
// errors.Is(err, ErrValidation) and errors.Is(err, ErrDuplicateKey) hold.
func (e *ValidationError) Unwrap() []error {
	errs := []error{ErrValidation}
	for _, fe := range e.Errors {
		if fe.Cause == nil {
			continue
		}
		seen := false
		for _, c := range errs {
			if c == fe.Cause {
				seen = true
				break
			}
		}
		if !seen {
			errs = append(errs, fe.Cause)
		}
	}
	return errs
}

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

// DuplicateKeyError reports a natural key that occurs more than once
// in a desired set.
func DuplicateKeyError(field, key string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{
		Field:   field,
		Message: fmt.Sprintf("duplicate title %q", key),
		Cause:   ErrDuplicateKey,
	}}}
}

// PrefixFields returns a copy of errs with every field name prefixed,
// e.g. "title" becomes "resources[2].title".
func PrefixFields(prefix string, errs []FieldError) []FieldError {
	out := make([]FieldError, len(errs))
	for i, fe := range errs {
		fe.Field = prefix + "." + fe.Field
		out[i] = fe
	}
	return out
}
