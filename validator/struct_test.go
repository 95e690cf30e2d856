package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type inner struct {
	Level  int    `json:"level" validate:"gte=0,lte=6"`
	Output string `json:"output" validate:"omitempty,oneof=stdout stderr"`
}

type outer struct {
	Name   string   `json:"name" validate:"required"`
	Tags   []string `json:"tags" validate:"min=1"`
	Inner  *inner   `json:"inner" validate:"required"`
	Plain  string   `validate:"omitempty,even"`
	Hidden string   `json:"-"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(&outer{Inner: &inner{Level: 9, Output: "file"}})
	assert.Equal(t, map[string]string{
		"name":         "The field 'name' is required.",
		"tags":         "The field 'tags' must have at least 1 item(s).",
		"inner.level":  "The field 'inner.level' must be less than or equal to 6.",
		"inner.output": "The field 'inner.output' must be one of [stdout stderr].",
	}, errs)

	assert.Empty(t, ValidateStruct(&outer{Name: "a", Tags: []string{"x"}, Inner: &inner{}}))
}

func init() {
	err := Register("even", "The field '%s' must have an even length.", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String())%2 == 0
	})
	if err != nil {
		panic(err)
	}
}

func TestValidateCustomTag(t *testing.T) {
	errs := ValidateStruct(&outer{Name: "a", Tags: []string{"x"}, Inner: &inner{}, Plain: "abc"})
	assert.Equal(t, map[string]string{"Plain": "The field 'Plain' must have an even length."}, errs)
}

func TestValidate(t *testing.T) {
	err := Validate(&outer{Tags: []string{"x"}, Inner: &inner{}})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.EqualError(t, err, "validation failed: The field 'name' is required.")

	assert.NoError(t, Validate(&outer{Name: "a", Tags: []string{"x"}, Inner: &inner{}}))
}
