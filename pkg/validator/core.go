package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Rule codes shared by the built-in rules.
const (
	CodeRequired   = "required"
	CodeDigits     = "digits"
	CodeLength     = "length"
	CodePattern    = "pattern"
	CodeEmailShape = "email_shape"
	CodeEqual      = "equal"
)

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Field             string
	Code              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports ErrValidationFailed so callers can match any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithCode returns a copy of the rule reporting the given code.
func (r Rule) WithCode(code string) Rule {
	r.Error.Code = code
	return r
}

// WithMessage returns a copy of the rule reporting the given message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// WithValues returns a copy of the rule with extra translation values merged in.
func (r Rule) WithValues(values map[string]any) Rule {
	merged := make(map[string]any, len(r.Error.TranslationValues)+len(values))
	for k, v := range r.Error.TranslationValues {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	r.Error.TranslationValues = merged
	return r
}

// Apply executes every rule and returns all failures as ValidationErrors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First executes rules in order and returns the first failure as *ValidationError.
// Rules after the failing one are not evaluated.
func First(rules ...Rule) error {
	if len(rules) == 0 {
		return ErrNoRules
	}

	for _, rule := range rules {
		if !rule.Check() {
			verr := rule.Error
			return &verr
		}
	}

	return nil
}

// ExtractValidationError returns the first validation failure carried by err.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var single *ValidationError
	if errors.As(err, &single) {
		return single
	}

	var many ValidationErrors
	if errors.As(err, &many) && len(many) > 0 {
		return &many[0]
	}

	return nil
}

// ExtractValidationErrors extracts ValidationErrors from an error.
// A single *ValidationError is returned as a one-element slice.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var many ValidationErrors
	if errors.As(err, &many) {
		return many
	}

	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{*single}
	}

	return nil
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
