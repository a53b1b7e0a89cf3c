package servicemail_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servicemail/svc/servicemail"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.c", true},
		{"cust@ex.com", true},
		{"first.last-1_x@sub.example.org", true},
		{"a@b.com.", true}, // trailing dot is accepted
		{"", false},
		{"   ", false},
		{"@b.c", false},
		{"a@", false},
		{"a@@b.c", false},
		{"a@bc", false},
		{"a@.c", false},
		{"a@b.", false},
		{"a b@c.d", false},
		{"a+tag@b.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, servicemail.IsValidEmail(tt.email))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	require.NoError(t, servicemail.ValidateEmail("cust@ex.com"))

	err := servicemail.ValidateEmail("  ")
	ferr, ok := servicemail.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, servicemail.FieldEmail, ferr.Field)
	assert.Equal(t, servicemail.KindRequired, ferr.Kind)
	assert.Equal(t, "Please enter an email address.", ferr.Message)

	err = servicemail.ValidateEmail("not-an-email")
	ferr, ok = servicemail.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, servicemail.KindInvalidEmailShape, ferr.Kind)
	assert.Equal(t, "Please enter a valid email address (e.g., customer@example.com).", ferr.Message)
	assert.ErrorIs(t, err, servicemail.ErrInvalidField)
}

func TestValidateStoreNumber(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		for raw, want := range map[string]string{
			"123":  "0123",
			"630":  "0630",
			"0630": "0630",
			"9999": "9999",
		} {
			got, err := servicemail.ValidateStoreNumber(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got)
			assert.Regexp(t, `^\d{4}$`, got)
		}
	})

	tests := []struct {
		name string
		raw  string
		kind servicemail.ErrorKind
		msg  string
	}{
		{"empty", "", servicemail.KindRequired, "Store number is required."},
		{"whitespace", "   ", servicemail.KindRequired, "Store number is required."},
		{"letter", "12a", servicemail.KindNonDigit, "Store number must contain only digits."},
		{"negative", "-123", servicemail.KindNonDigit, "Store number must contain only digits."},
		{"too short", "12", servicemail.KindBadLength, "Store number must be 3 or 4 digits."},
		{"too long", "12345", servicemail.KindBadLength, "Store number must be 3 or 4 digits."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := servicemail.ValidateStoreNumber(tt.raw)
			require.Error(t, err)
			assert.Empty(t, got)

			ferr, ok := servicemail.AsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, servicemail.FieldStore, ferr.Field)
			assert.Equal(t, tt.kind, ferr.Kind)
			assert.Equal(t, tt.msg, ferr.Message)
		})
	}
}

func TestValidateOrderNumber(t *testing.T) {
	t.Parallel()

	assert.NoError(t, servicemail.ValidateOrderNumber("0630-250814-56874", "0630"))
	assert.NoError(t, servicemail.ValidateOrderNumber("", "0630"))
	assert.NoError(t, servicemail.ValidateOrderNumber("  ", "1234"))

	t.Run("store mismatch", func(t *testing.T) {
		t.Parallel()

		err := servicemail.ValidateOrderNumber("0630-250814-56874", "0631")
		ferr, ok := servicemail.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, servicemail.FieldOrder, ferr.Field)
		assert.Equal(t, servicemail.KindStoreMismatch, ferr.Kind)
		assert.Equal(t, "Order number store code (0630) must match store number (0631)", ferr.Message)
		assert.Equal(t, "0630", ferr.Values["order_store"])
		assert.Equal(t, "0631", ferr.Values["store"])
	})

	for _, bad := range []string{
		"0630-25081-56874",
		"630-250814-56874",
		"0630-250814-5687",
		"0630250814-56874",
		"0630-250814-56874x",
		"abcd-250814-56874",
	} {
		t.Run("bad format "+bad, func(t *testing.T) {
			t.Parallel()

			err := servicemail.ValidateOrderNumber(bad, "0630")
			ferr, ok := servicemail.AsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, servicemail.KindBadFormat, ferr.Kind)
			assert.Equal(t, "Order number must be in format SSSS-YYMMDD-##### (e.g., 0630-250814-56874)", ferr.Message)
		})
	}
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	t.Run("blank fields report nothing", func(t *testing.T) {
		t.Parallel()

		in := servicemail.Input{}
		assert.NoError(t, servicemail.ValidateField(servicemail.FieldEmail, in))
		assert.NoError(t, servicemail.ValidateField(servicemail.FieldStore, in))
		assert.NoError(t, servicemail.ValidateField(servicemail.FieldOrder, in))
	})

	t.Run("email shape uses short message", func(t *testing.T) {
		t.Parallel()

		err := servicemail.ValidateField(servicemail.FieldEmail, servicemail.Input{Email: "nope"})
		ferr, ok := servicemail.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid email format", ferr.Message)
		assert.Equal(t, servicemail.KindInvalidEmailShape, ferr.Kind)
	})

	t.Run("store", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, servicemail.ValidateField(servicemail.FieldStore, servicemail.Input{StoreNumber: " 630 "}))

		err := servicemail.ValidateField(servicemail.FieldStore, servicemail.Input{StoreNumber: "63"})
		ferr, ok := servicemail.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, servicemail.KindBadLength, ferr.Kind)
	})

	t.Run("order skipped while store is invalid", func(t *testing.T) {
		t.Parallel()

		in := servicemail.Input{StoreNumber: "6x", OrderNumber: "garbage"}
		assert.NoError(t, servicemail.ValidateField(servicemail.FieldOrder, in))
	})

	t.Run("order checked against padded store", func(t *testing.T) {
		t.Parallel()

		in := servicemail.Input{StoreNumber: "630", OrderNumber: "0630-250814-56874"}
		assert.NoError(t, servicemail.ValidateField(servicemail.FieldOrder, in))

		in.StoreNumber = "631"
		ferr, ok := servicemail.AsFieldError(servicemail.ValidateField(servicemail.FieldOrder, in))
		require.True(t, ok)
		assert.Equal(t, servicemail.KindStoreMismatch, ferr.Kind)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		err := servicemail.ValidateField(servicemail.Field("brand"), servicemail.Input{})
		assert.True(t, errors.Is(err, servicemail.ErrUnknownField))
	})
}
