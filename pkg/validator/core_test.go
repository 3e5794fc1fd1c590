package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "name",
			Message: "must be non-empty",
		})
		assert.Equal(t, "validation failed: name: must be non-empty", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "shares", Message: "must be >= 0"})
		errs.Add(validator.ValidationError{Field: "price", Message: "expected float64, got string"})

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "shares: must be >= 0")
		assert.Contains(t, msg, "price: expected float64, got string")
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "shares", Message: "must be >= 0"})
	errs.Add(validator.ValidationError{Field: "shares", Message: "expected int, got string"})
	errs.Add(validator.ValidationError{Field: "name", Message: "must be non-empty"})

	assert.True(t, errs.Has("shares"))
	assert.False(t, errs.Has("price"))
	assert.Equal(t, []string{"must be >= 0", "expected int, got string"}, errs.Get("shares"))
	assert.Empty(t, errs.Get("price"))
	assert.Equal(t, []string{"shares", "name"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Run("single error exposes its kind", func(t *testing.T) {
		err := validator.ValidationError{Field: "shares", Message: "must be >= 0", Kind: validator.ErrValue}
		assert.ErrorIs(t, err, validator.ErrValue)
		assert.NotErrorIs(t, err, validator.ErrType)
		assert.Equal(t, "shares: must be >= 0", err.Error())
	})

	t.Run("missing kind falls back to generic failure", func(t *testing.T) {
		err := validator.ValidationError{Field: "x", Message: "bad"}
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("collection unwraps to each failure", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "a", Message: "m", Kind: validator.ErrType},
			{Field: "b", Message: "m", Kind: validator.ErrValue},
		}
		wrapped := fmt.Errorf("constructing: %w", errs)
		assert.True(t, validator.IsTypeError(wrapped))
		assert.True(t, validator.IsValueError(wrapped))
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when every rule passes", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "Stock"),
			validator.MinNum("shares", 10, 0),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "  "),
			validator.MinNum("shares", -1, 0),
			validator.InList("format", "xml", []string{"text", "csv", "html"}),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"name", "shares", "format"}, errs.Fields())
		assert.True(t, validator.IsValueError(err))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("plain error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("single validation error is wrapped", func(t *testing.T) {
		_, err := validator.NonEmptyString().Check("name", "")
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(fmt.Errorf("set: %w", err))
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "validation.non_empty", errs[0].TranslationKey)
	})
}
