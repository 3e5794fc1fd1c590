package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single field failure with translation support.
// Kind holds the sentinel describing the failure class (ErrType or ErrValue).
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Kind              error
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap exposes the failure class to errors.Is.
func (e ValidationError) Unwrap() error {
	if e.Kind == nil {
		return ErrValidationFailed
	}
	return e.Kind
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is and errors.As reach every individual failure.
func (ve ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(ve))
	for _, err := range ve {
		out = append(out, err)
	}
	return out
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// ExtractValidationErrors collects every ValidationError found in err's tree.
// A lone ValidationError returned by a Validator is wrapped into a one-element slice.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

// IsTypeError reports whether err is a type-mismatch failure.
func IsTypeError(err error) bool {
	return errors.Is(err, ErrType)
}

// IsValueError reports whether err is a range or emptiness failure.
func IsValueError(err error) bool {
	return errors.Is(err, ErrValue)
}

func typeError(field, expected string, value any) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("expected %s, got %T", expected, value),
		TranslationKey: "validation.type",
		TranslationValues: map[string]any{
			"field":    field,
			"expected": expected,
		},
		Kind: ErrType,
	}
}

func valueError(field, message, key string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        message,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field": field,
		},
		Kind: ErrValue,
	}
}
