package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
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

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Get returns every message recorded for field, in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// First returns the first message recorded for field, or an empty string.
func (ve ValidationErrors) First(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Fields returns the fields with at least one error, in first-seen order.
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

// WithMessage returns a copy of the rule reporting msg instead of the default message.
// The translation key and values are preserved.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
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

// ApplyFirst evaluates each group of rules in order and records at most one
// error per group: the error of the first rule that fails. Later rules in a
// group are not evaluated once one has failed, so ordering encodes precedence
// (required before length before format).
func ApplyFirst(groups ...[]Rule) error {
	var errors ValidationErrors

	for _, group := range groups {
		if err, failed := firstFailure(group); failed {
			errors = append(errors, err)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

func firstFailure(rules []Rule) (ValidationError, bool) {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error, true
		}
	}
	return ValidationError{}, false
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}
