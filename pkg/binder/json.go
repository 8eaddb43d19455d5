package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBodySize is the default maximum size for JSON and form request bodies (1MB).
const DefaultMaxBodySize = 1 << 20

// JSON creates a JSON body binder. Unknown fields and trailing data are
// rejected. String values are bound verbatim; validation decides what is
// acceptable.
//
// Example:
//
//	r.Post("/customers", handler.Wrap(create,
//		handler.WithBinder[handler.Context, customer.FormFields](binder.JSON()),
//	))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return fmt.Errorf("%w, expected application/json", err)
		}
		if mediaType != mimeJSON {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxBodySize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxBodySize {
			return fmt.Errorf("%w: %w (max %d bytes)", ErrFailedToParseJSON, ErrRequestTooLarge, DefaultMaxBodySize)
		}

		return decodeJSON(body, v)
	}
}

func decodeJSON(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	return nil
}
