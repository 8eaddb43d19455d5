package binder

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Form creates an application/x-www-form-urlencoded body binder.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Fields without a form tag are left untouched.
// Supported types are strings, integers, floats, bools, slices of those for
// multi-value fields and pointers for optional fields.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return fmt.Errorf("%w, expected %s", err, mimeForm)
		}
		if mediaType != mimeForm {
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, mimeForm)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxBodySize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseForm, err)
		}
		if len(body) > DefaultMaxBodySize {
			return fmt.Errorf("%w: %w (max %d bytes)", ErrFailedToParseForm, ErrRequestTooLarge, DefaultMaxBodySize)
		}

		values, err := url.ParseQuery(string(body))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
