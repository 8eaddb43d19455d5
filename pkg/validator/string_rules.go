package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLenString checks the length of value in characters (runes).
func MinLenString(field, value string, min int) Rule {
	return minLength(field, min, utf8.RuneCountInString(value))
}

// MaxLenString checks the length of value in characters (runes),
// surrounding whitespace included.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": field, "max": max},
		},
	}
}

// MinLenTrimmed counts runes after surrounding whitespace is removed, so
// "  A  " is one character long.
func MinLenTrimmed(field, value string, min int) Rule {
	return minLength(field, min, utf8.RuneCountInString(strings.TrimSpace(value)))
}

func minLength(field string, min, length int) Rule {
	return Rule{
		Check: func() bool { return length >= min },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey:    "validation.min_length",
			TranslationValues: map[string]any{"field": field, "min": min},
		},
	}
}
