package servicemail

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/servicemail/pkg/validator"
)

var (
	// ErrInvalidField matches every *FieldError via errors.Is.
	ErrInvalidField    = errors.New("servicemail: invalid field")
	ErrUnknownTemplate = errors.New("servicemail: unknown template")
	ErrUnknownField    = errors.New("servicemail: unknown field")
)

// ErrorKind classifies a field error.
type ErrorKind string

const (
	KindRequired          ErrorKind = "required"
	KindNonDigit          ErrorKind = "non_digit"
	KindBadLength         ErrorKind = "bad_length"
	KindBadFormat         ErrorKind = "bad_format"
	KindStoreMismatch     ErrorKind = "store_mismatch"
	KindInvalidEmailShape ErrorKind = "invalid_email_shape"
	KindUnknownTemplate   ErrorKind = "unknown_template"
)

const (
	msgEmailRequired     = "Please enter an email address."
	msgEmailShape        = "Please enter a valid email address (e.g., customer@example.com)."
	msgEmailShapeShort   = "Invalid email format"
	msgStoreRequired     = "Store number is required."
	msgStoreNonDigit     = "Store number must contain only digits."
	msgStoreBadLength    = "Store number must be 3 or 4 digits."
	msgOrderBadFormat    = "Order number must be in format SSSS-YYMMDD-##### (e.g., 0630-250814-56874)"
	msgOrderMismatchTmpl = "Order number store code (%s) must match store number (%s)"
	msgUnknownTemplate   = "Please choose a message template."
)

// FieldError is the single error surfaced for a failed attempt.
type FieldError struct {
	Field   Field
	Kind    ErrorKind
	Message string
	// Values holds the data interpolated into Message, e.g. both store codes
	// for KindStoreMismatch.
	Values map[string]string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// AsFieldError unwraps err into a *FieldError.
func AsFieldError(err error) (*FieldError, bool) {
	var ferr *FieldError
	if errors.As(err, &ferr) {
		return ferr, true
	}
	return nil, false
}

// toFieldError converts a validator failure built with WithCode(kind) into a FieldError.
func toFieldError(err error) *FieldError {
	verr := validator.ExtractValidationError(err)
	if verr == nil {
		return nil
	}

	ferr := &FieldError{
		Field:   Field(verr.Field),
		Kind:    ErrorKind(verr.Code),
		Message: verr.Message,
	}
	for k, v := range verr.TranslationValues {
		if k == "field" {
			continue
		}
		if s, ok := v.(string); ok {
			if ferr.Values == nil {
				ferr.Values = make(map[string]string)
			}
			ferr.Values[k] = s
		}
	}
	return ferr
}
