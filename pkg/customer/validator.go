package customer

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/customerdesk/pkg/validator"
)

const (
	nameMinLen   = 2
	nameMaxLen   = 50
	emailMaxLen  = 254
	phoneMaxLen  = 15
	phoneMinDigs = 10
)

// space is ASCII whitespace plus NBSP, BOM and the Unicode space
// separators. RE2's \s covers only the ASCII part.
const space = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z` + space + `\-'.]+$`)
	emailRegex = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phoneRegex = regexp.MustCompile(`^[\d` + space + `\-()\\+]+$`)
)

var labels = map[string]string{
	FieldFirstName: "First name",
	FieldLastName:  "Last name",
	FieldEmail:     "Email",
	FieldPhone:     "Phone number",
}

// Validator checks customer form fields. It holds no per-call state and is
// safe for concurrent use.
type Validator struct {
	patterns *validator.PatternSet
}

// NewValidator creates a Validator using patterns as the dangerous-pattern
// deny-list. A nil set selects validator.DefaultDangerousPatterns.
func NewValidator(patterns *validator.PatternSet) *Validator {
	return &Validator{patterns: patterns}
}

var defaultValidator = NewValidator(nil)

// Validate checks all fields with the default deny-list.
func Validate(f FormFields) error {
	return defaultValidator.Validate(f)
}

// Validate checks every field and returns FieldErrors with one message per
// failing field, or nil when the form is acceptable.
func (v *Validator) Validate(f FormFields) error {
	fe := collect(
		v.rules(FieldFirstName, f.FirstName),
		v.rules(FieldLastName, f.LastName),
		v.rules(FieldEmail, f.Email),
		v.rules(FieldPhone, f.Phone),
	)
	if fe.IsEmpty() {
		return nil
	}
	return fe
}

// ValidateField checks a single field. It returns the error message, or an
// empty string when value is acceptable.
func (v *Validator) ValidateField(field, value string) (string, error) {
	if _, ok := labels[field]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return collect(v.rules(field, value)).Get(field), nil
}

// rules returns the ordered rule group for field. The first failing rule
// decides the message, so required comes before length and length before
// format.
func (v *Validator) rules(field, value string) []validator.Rule {
	label := labels[field]
	required := validator.RequiredString(field, value).WithMessage(label + " is required")

	switch field {
	case FieldFirstName, FieldLastName:
		invalid := label + " contains invalid characters or format"
		return []validator.Rule{
			required,
			validator.MinLenTrimmed(field, value, nameMinLen).WithMessage(label + " must be at least 2 characters"),
			validator.MaxLenString(field, value, nameMaxLen).WithMessage(invalid),
			validator.MatchesPattern(field, value, nameRegex, "name").WithMessage(invalid),
			validator.NoDangerousPattern(field, value, v.patterns).WithMessage(invalid),
		}

	case FieldEmail:
		invalid := "Please enter a valid email address"
		return []validator.Rule{
			required,
			validator.MatchesPattern(field, value, emailRegex, "email").WithMessage(invalid),
			validator.NoDangerousPattern(field, value, v.patterns).WithMessage(invalid),
			validator.MaxLenString(field, value, emailMaxLen).WithMessage(invalid),
		}

	case FieldPhone:
		invalid := "Please enter a valid phone number"
		return []validator.Rule{
			required,
			validator.MatchesPattern(field, value, phoneRegex, "phone").WithMessage(invalid),
			validator.MinDigits(field, value, phoneMinDigs).WithMessage(invalid),
			validator.MaxLenString(field, value, phoneMaxLen).WithMessage(invalid),
			validator.NoDangerousPattern(field, value, v.patterns).WithMessage(invalid),
		}
	}

	return nil
}

// collect applies the rule groups and keeps the first message per field.
func collect(groups ...[]validator.Rule) FieldErrors {
	errs := validator.ExtractValidationErrors(validator.ApplyFirst(groups...))
	if errs.IsEmpty() {
		return nil
	}

	fields := errs.Fields()
	fe := make(FieldErrors, len(fields))
	for _, field := range fields {
		fe[field] = errs.First(field)
	}
	return fe
}
