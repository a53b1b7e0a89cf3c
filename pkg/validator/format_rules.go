package validator

import "strings"

// EmailShape performs a permissive shape check on an email address.
// It is not RFC 5322 validation: it requires a single '@' that is neither first
// nor last, a '.' somewhere after the '@' that is neither adjacent to it nor the
// final character, and only characters from [A-Za-z0-9@._-].
// Addresses such as "a@b.com." or "a..b@c.d" pass.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeOK(value)
		},
		Error: ValidationError{
			Field:          field,
			Code:           CodeEmailShape,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func emailShapeOK(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.IndexByte(email[at+1:], '@') != -1 {
		return false
	}

	dot := strings.IndexByte(email[at:], '.')
	if dot == -1 {
		return false
	}
	dot += at
	if dot == at+1 || dot == len(email)-1 {
		return false
	}

	for i := 0; i < len(email); i++ {
		if !isEmailShapeChar(email[i]) {
			return false
		}
	}
	return true
}

func isEmailShapeChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '@', c == '.', c == '_', c == '-':
		return true
	}
	return false
}
