package servicemail

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/servicemail/pkg/sanitizer"
	"github.com/dmitrymomot/servicemail/pkg/validator"
)

// StoreNumberWidth is the length of a canonical store number.
const StoreNumberWidth = 4

// orderPattern is SSSS-YYMMDD-NNNNN.
var orderPattern = regexp.MustCompile(`^(\d{4})-(\d{6})-(\d{5})$`)

// IsValidEmail reports whether email passes the permissive shape check.
func IsValidEmail(email string) bool {
	return validator.Apply(validator.EmailShape(string(FieldEmail), email)) == nil
}

// ValidateEmail checks a submitted email, distinguishing a missing address
// from a malformed one.
func ValidateEmail(email string) error {
	field := string(FieldEmail)
	err := validator.First(
		validator.Required(field, email).
			WithCode(string(KindRequired)).
			WithMessage(msgEmailRequired),
		validator.EmailShape(field, email).
			WithCode(string(KindInvalidEmailShape)).
			WithMessage(msgEmailShape),
	)
	if err != nil {
		return toFieldError(err)
	}
	return nil
}

// ValidateStoreNumber checks a 3 or 4 digit store number and returns it
// zero-padded to 4 digits.
func ValidateStoreNumber(raw string) (string, error) {
	field := string(FieldStore)
	err := validator.First(
		validator.Required(field, raw).
			WithCode(string(KindRequired)).
			WithMessage(msgStoreRequired),
		validator.Digits(field, raw).
			WithCode(string(KindNonDigit)).
			WithMessage(msgStoreNonDigit),
		validator.LengthIn(field, raw, StoreNumberWidth-1, StoreNumberWidth).
			WithCode(string(KindBadLength)).
			WithMessage(msgStoreBadLength),
	)
	if err != nil {
		return "", toFieldError(err)
	}
	return sanitizer.PadLeft(raw, StoreNumberWidth, '0'), nil
}

// ValidateOrderNumber checks an optional order number against the canonical
// store number. A blank order number is valid.
func ValidateOrderNumber(raw, canonicalStore string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	field := string(FieldOrder)
	orderStore := orderStoreCode(raw)
	err := validator.First(
		validator.Matches(field, raw, orderPattern, "SSSS-YYMMDD-#####").
			WithCode(string(KindBadFormat)).
			WithMessage(msgOrderBadFormat),
		validator.Equal(field, orderStore, canonicalStore).
			WithCode(string(KindStoreMismatch)).
			WithMessage(fmt.Sprintf(msgOrderMismatchTmpl, orderStore, canonicalStore)).
			WithValues(map[string]any{
				"order_store": orderStore,
				"store":       canonicalStore,
			}),
	)
	if err != nil {
		return toFieldError(err)
	}
	return nil
}

func orderStoreCode(order string) string {
	m := orderPattern.FindStringSubmatch(order)
	if m == nil {
		return ""
	}
	return m[1]
}

// ValidateField runs the as-you-type check for a single field. Blank fields
// report nothing, and the order number is only checked once the store number
// is valid.
func ValidateField(field Field, in Input) error {
	in = Normalize(in)

	switch field {
	case FieldEmail:
		if in.Email != "" && !IsValidEmail(in.Email) {
			return &FieldError{Field: FieldEmail, Kind: KindInvalidEmailShape, Message: msgEmailShapeShort}
		}
		return nil

	case FieldStore:
		if in.StoreNumber == "" {
			return nil
		}
		_, err := ValidateStoreNumber(in.StoreNumber)
		return err

	case FieldOrder:
		if in.OrderNumber == "" || in.StoreNumber == "" {
			return nil
		}
		store, err := ValidateStoreNumber(in.StoreNumber)
		if err != nil {
			return nil
		}
		return ValidateOrderNumber(in.OrderNumber, store)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}
