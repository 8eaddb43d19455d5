package customer

import (
	"errors"
	"maps"
	"sort"
	"strings"
)

var (
	// ErrUnknownField is returned when a field name is not one of Fields.
	ErrUnknownField = errors.New("unknown form field")

	// ErrNotFound is returned by clients when the customer does not exist.
	ErrNotFound = errors.New("customer not found")
)

// Submission failure fallbacks used when the upstream error carries no detail.
const (
	MsgCreateFailed = "Failed to create customer"
	MsgUpdateFailed = "Failed to update customer"
)

// FieldErrors maps a field name to its error message. At most one message
// is kept per field.
type FieldErrors map[string]string

// Error lists the field errors ordered by field name.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Get returns the message for field, or an empty string.
func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

// IsEmpty reports whether there are no errors.
func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Clone returns a copy that can be modified independently.
func (fe FieldErrors) Clone() FieldErrors {
	if fe == nil {
		return nil
	}
	return maps.Clone(fe)
}

// Detailer is implemented by upstream errors that carry a human-readable detail.
type Detailer interface {
	ErrorDetail() string
}

// SubmissionError reports an upstream failure while saving a customer.
// Errors holds only the general slot, already HTML-encoded for display.
type SubmissionError struct {
	Errors FieldErrors
	Err    error
}

func (e *SubmissionError) Error() string {
	return "submission failed: " + e.Errors.Get(FieldGeneral)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
