package validator

import (
	"fmt"
	"regexp"
)

// Matches validates value against a precompiled pattern.
// The description is used in the default message, e.g. "SSSS-YYMMDD-#####".
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re != nil && re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodePattern,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
		},
	}
}
