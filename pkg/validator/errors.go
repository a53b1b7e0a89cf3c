package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoRules is returned by First when it is called without rules.
	ErrNoRules = errors.New("no validation rules provided")
)
