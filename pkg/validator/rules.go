package validator

import (
	"fmt"
	"strings"
	"unicode"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
			Kind: ErrValue,
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
			Kind: ErrValue,
		},
	}
}

// InList validates that value is one of the allowed values.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowed),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowed,
			},
			Kind: ErrValue,
		},
	}
}

// Identifier validates that value is a letter or underscore followed by
// letters, digits or underscores.
func Identifier(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsIdentifier(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%q is not a valid identifier", value),
			TranslationKey: "validation.identifier",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
			Kind: ErrValue,
		},
	}
}

// NoPrefix validates that value does not start with prefix.
func NoPrefix(field, value, prefix string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.HasPrefix(value, prefix)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not start with %q", prefix),
			TranslationKey: "validation.no_prefix",
			TranslationValues: map[string]any{
				"field":  field,
				"prefix": prefix,
			},
			Kind: ErrValue,
		},
	}
}

func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
