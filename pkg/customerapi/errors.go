package customerapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/customerdesk/pkg/customer"
)

var (
	ErrInvalidBaseURL   = errors.New("invalid customer api base url")
	ErrRequestFailed    = errors.New("customer api request failed")
	ErrInvalidResponse  = errors.New("invalid customer api response")
	ErrUnexpectedStatus = errors.New("unexpected customer api status")
)

// APIError is a non-2xx answer from the Customer API.
//
// Detail is set only from a string "detail" key of a JSON body and is the
// one part meant for end users. It is not HTML-safe and must be encoded
// before display. Any other body text (proxy pages, plain-text errors,
// "message" keys) is kept for Error() only, so it reaches logs but never
// the form.
type APIError struct {
	StatusCode  int
	Detail      string
	FieldErrors map[string][]string

	body string
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.body
	}
	if msg == "" {
		return fmt.Sprintf("customer api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("customer api: %d: %s", e.StatusCode, msg)
}

// ErrorDetail returns the user-facing upstream detail, or "" when the
// response had none.
func (e *APIError) ErrorDetail() string {
	return e.Detail
}

// Is lets callers match 404 answers with customer.ErrNotFound and every
// answer with ErrUnexpectedStatus.
func (e *APIError) Is(target error) bool {
	switch target {
	case customer.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnexpectedStatus:
		return true
	}
	return false
}
