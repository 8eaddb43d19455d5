package binder

import (
	"fmt"
	"mime"
	"net/http"
)

const (
	mimeJSON = "application/json"
	mimeForm = "application/x-www-form-urlencoded"
)

// Body binds a JSON or urlencoded form body depending on the request
// Content-Type. Struct fields should carry both `json` and `form` tags.
func Body() func(r *http.Request, v any) error {
	jsonBinder, formBinder := JSON(), Form()
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return fmt.Errorf("%w, expected %s or %s", err, mimeJSON, mimeForm)
		}
		switch mediaType {
		case mimeJSON:
			return jsonBinder(r, v)
		case mimeForm:
			return formBinder(r, v)
		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mediaType, mimeJSON, mimeForm)
		}
	}
}

func mediaTypeOf(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: missing content-type header", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: malformed content-type %q", ErrUnsupportedMediaType, contentType)
	}
	return mediaType, nil
}
