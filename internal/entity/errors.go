package entity

import (
	"errors"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrValidation   = errors.New("validation failed")
)

// ValidationError describes the first request field that broke a rule.
type ValidationError struct {
	Field string
	Err   error
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return e.Field + " is invalid"
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
