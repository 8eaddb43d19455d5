package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/customerdesk/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "phone", Message: "too short"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "email: is required")
		assert.Contains(t, errorMsg, "phone: too short")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "first_name", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "first_name", Message: "bad format"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})

	assert.Equal(t, []string{"too short", "bad format"}, errs.Get("first_name"))
	assert.Nil(t, errs.Get("phone"))
	assert.Equal(t, "too short", errs.First("first_name"))
	assert.Equal(t, "", errs.First("phone"))
	assert.Equal(t, []string{"first_name", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestRule_WithMessage(t *testing.T) {
	original := validator.RequiredString("email", "")
	custom := original.WithMessage("Email is required")

	assert.Equal(t, "Email is required", custom.Error.Message)
	assert.Equal(t, "validation.required", custom.Error.TranslationKey)
	assert.Equal(t, "field is required", original.Error.Message, "original rule must not change")
	assert.False(t, custom.Check())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "John"),
			validator.MaxLenString("name", "John", 10),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", ""),
			validator.MinLenString("name", "", 2),
			validator.RequiredString("email", ""),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"field is required", "must be at least 2 characters long"}, errs.Get("name"))
	})
}

func TestApplyFirst(t *testing.T) {
	t.Run("reports only the first failing rule of each group", func(t *testing.T) {
		err := validator.ApplyFirst(
			[]validator.Rule{
				validator.RequiredString("name", "a").WithMessage("required"),
				validator.MinLenTrimmed("name", "a", 2).WithMessage("too short"),
				validator.MatchesRegex("name", "a", `^\d+$`, "digits").WithMessage("format"),
			},
			[]validator.Rule{
				validator.RequiredString("email", "").WithMessage("email required"),
				validator.MaxLenString("email", "", 10),
			},
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"too short"}, errs.Get("name"))
		assert.Equal(t, []string{"email required"}, errs.Get("email"))
	})

	t.Run("stops evaluating a group after the first failure", func(t *testing.T) {
		evaluated := false
		err := validator.ApplyFirst([]validator.Rule{
			validator.RequiredString("name", ""),
			{Check: func() bool { evaluated = true; return true }},
		})
		require.Error(t, err)
		assert.False(t, evaluated)
	})

	t.Run("returns nil when every group passes", func(t *testing.T) {
		err := validator.ApplyFirst(
			[]validator.Rule{validator.RequiredString("a", "x")},
			nil,
		)
		assert.NoError(t, err)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		inner := validator.Apply(validator.RequiredString("email", ""))
		err := fmt.Errorf("create customer: %w", inner)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})
}
