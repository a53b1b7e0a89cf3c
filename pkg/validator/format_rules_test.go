package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servicemail/pkg/validator"
)

func TestEmailShape(t *testing.T) {
	t.Run("accepted shapes", func(t *testing.T) {
		valid := []string{
			"a@b.c",
			"cust@ex.com",
			"first.last@store-01.example.org",
			"under_score@domain.io",
			"a@b.com.", // trailing dot is tolerated
			"a..b@c.d", // consecutive dots in the local part too
			"a@b.c.d.e",
		}
		for _, email := range valid {
			assert.NoError(t, validator.Apply(validator.EmailShape("email", email)), "email %q", email)
		}
	})

	t.Run("rejected shapes", func(t *testing.T) {
		invalid := []string{
			"",
			"   ",
			"@b.c",
			"a@",
			"a@@b.c",
			"a@b@c.d",
			"a@bc",
			"a@.c",
			"a@b.",
			"a+tag@b.c",
			"a b@c.d",
			"jöhn@b.c",
		}
		for _, email := range invalid {
			err := validator.Apply(validator.EmailShape("email", email))
			require.Error(t, err, "email %q", email)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "validation.email", verrs[0].TranslationKey)
			assert.Equal(t, validator.CodeEmailShape, verrs[0].Code)
		}
	})
}
