package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrymomot/customerdesk/pkg/sanitizer"
)

// Form is one editing session of the customer form. It is not safe for
// concurrent use.
type Form struct {
	validator *Validator
	fields    FormFields
	errors    FieldErrors
}

// NewForm starts a session with the given initial values.
// A nil validator uses the default deny-list.
func NewForm(v *Validator, initial FormFields) *Form {
	if v == nil {
		v = defaultValidator
	}
	return &Form{validator: v, fields: initial, errors: FieldErrors{}}
}

// Fields returns the current values.
func (f *Form) Fields() FormFields {
	return f.fields
}

// Errors returns a copy of the current error map.
func (f *Form) Errors() FieldErrors {
	return f.errors.Clone()
}

// Set updates a field and clears its error. The new value is not validated
// until the next Validate or Submit.
func (f *Form) Set(field, value string) error {
	if err := f.fields.Set(field, value); err != nil {
		return err
	}
	delete(f.errors, field)
	return nil
}

// Validate recomputes the error map from scratch and reports whether the
// form is acceptable.
func (f *Form) Validate() bool {
	f.errors = FieldErrors{}
	var fe FieldErrors
	if errors.As(f.validator.Validate(f.fields), &fe) {
		f.errors = fe.Clone()
	}
	return f.errors.IsEmpty()
}

// Submit validates the form and, when it is acceptable, calls save with the
// current values. Validation failures return FieldErrors and save is never
// called. A save failure replaces the error map with a single general message
// (the upstream detail, or fallback when there is none) HTML-encoded for
// display, and returns it as a *SubmissionError.
func (f *Form) Submit(ctx context.Context, fallback string, save func(context.Context, FormFields) error) error {
	if !f.Validate() {
		return f.Errors()
	}

	err := save(ctx, f.fields)
	if err == nil {
		return nil
	}

	f.errors = FieldErrors{FieldGeneral: sanitizer.EscapeHTML(errorDetail(err, fallback))}
	return &SubmissionError{Errors: f.Errors(), Err: err}
}

// errorDetail returns the upstream detail carried by err, or fallback.
func errorDetail(err error, fallback string) string {
	var d Detailer
	if errors.As(err, &d) {
		if detail := strings.TrimSpace(d.ErrorDetail()); detail != "" {
			return detail
		}
	}
	return fallback
}
