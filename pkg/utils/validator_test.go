package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,numeric,len=11"`
	Qty   int    `json:"amount" validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Name: "Ana", Email: "ana@mail.com", Qty: 1})
		assert.Nil(t, errs)
	})

	t.Run("uses json names", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Email: "nope", Phone: "12ab", Qty: 0})
		assert.Equal(t, "This field is required", errs["name"])
		assert.Equal(t, "Invalid email format", errs["email"])
		assert.Equal(t, "Must contain only digits", errs["phone"])
		assert.Equal(t, "Must be greater than 0", errs["amount"])
	})
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{
		"name":  "This field is required",
		"email": "Invalid email format",
	})
	assert.Equal(t, "email: Invalid email format; name: This field is required", out)
}
