package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string          `json:"name" validate:"required,max=5"`
	Email  string          `json:"email" validate:"required,email"`
	Count  int             `json:"count" validate:"gt=0"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

func TestStructValid(t *testing.T) {
	err := Struct(sample{Name: "ok", Email: "a@b.co", Count: 1, Amount: decimal.RequireFromString("9.99")})
	assert.NoError(t, err)
}

func TestStructCollectsAllErrors(t *testing.T) {
	err := Struct(sample{Name: "toolong", Email: "nope", Count: 0, Amount: decimal.Zero})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := map[string]string{}
	for _, v := range verrs {
		fields[v.Field] = v.Message
	}
	assert.Equal(t, "name must be at most 5 characters", fields["name"])
	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Equal(t, "count must be greater than 0", fields["count"])
	assert.Equal(t, "amount must be greater than 0", fields["amount"])
	assert.Contains(t, err.Error(), "invalid input:")
}

func TestRequired(t *testing.T) {
	err := Struct(sample{Email: "a@b.co", Count: 1, Amount: decimal.NewFromInt(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestEmptyErrors(t *testing.T) {
	assert.Equal(t, "", ValidationErrors{}.Error())
}
