package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeRequired,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Digits validates that every rune is an ASCII digit. Empty strings fail.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return false
			}
			for i := 0; i < len(value); i++ {
				if value[i] < '0' || value[i] > '9' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeDigits,
			Message:        "must contain only digits",
			TranslationKey: "validation.digits",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// LengthIn validates that the rune count of value equals one of the allowed lengths.
func LengthIn(field, value string, allowed ...int) Rule {
	return Rule{
		Check: func() bool {
			n := len([]rune(value))
			for _, l := range allowed {
				if n == l {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeLength,
			Message:        fmt.Sprintf("must be %s characters long", joinInts(allowed, " or ")),
			TranslationKey: "validation.length_in",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": allowed,
			},
		},
	}
}

// Equal validates that value equals expected exactly.
func Equal(field, value, expected string) Rule {
	return Rule{
		Check: func() bool {
			return value == expected
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeEqual,
			Message:        fmt.Sprintf("must equal %s", expected),
			TranslationKey: "validation.equal",
			TranslationValues: map[string]any{
				"field":    field,
				"value":    value,
				"expected": expected,
			},
		},
	}
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}
