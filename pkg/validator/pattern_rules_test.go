package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/servicemail/pkg/validator"
)

func TestMatches(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}-\d{6}-\d{5}$`)

	assert.NoError(t, validator.Apply(validator.Matches("order", "0630-250814-56874", re, "SSSS-YYMMDD-#####")))

	err := validator.First(validator.Matches("order", "0630-25081-56874", re, "SSSS-YYMMDD-#####"))
	verr := validator.ExtractValidationError(err)
	if assert.NotNil(t, verr) {
		assert.Equal(t, validator.CodePattern, verr.Code)
		assert.Equal(t, "must match SSSS-YYMMDD-##### pattern", verr.Message)
	}

	assert.Error(t, validator.Apply(validator.Matches("order", "x", nil, "anything")))
}
