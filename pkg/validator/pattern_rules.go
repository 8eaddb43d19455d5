package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchesRegex validates against custom patterns. Compiles regex on each call - use MatchesPattern with a cached regexp on hot paths.
func MatchesRegex(field, value string, pattern string, description string) Rule {
	return MatchesPattern(field, value, regexp.MustCompile(pattern), description)
}

// MatchesPattern validates value against a precompiled regular expression.
// Blank values never match.
func MatchesPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// MinDigits validates that value contains at least min ASCII digits, ignoring
// every other character.
func MinDigits(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return countDigits(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least %d digits", min),
			TranslationKey: "validation.min_digits",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
