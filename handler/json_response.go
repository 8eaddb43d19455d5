package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// JSONResponse is the standard JSON response envelope.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets a custom HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta merges metadata into the response.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Meta == nil {
			r.body.Meta = make(map[string]any, len(meta))
		}
		maps.Copy(r.body.Meta, meta)
	}
}

// JSON creates a JSON response. Errors passed as v are rendered as error bodies.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// JSONError creates a JSON error response from an error or *ErrorDetail.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.body.Error = errorToDetail(e, &r.status)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// errorToDetail converts err to an ErrorDetail and sets the matching status.
// Errors that are neither ValidationError nor HTTPError never expose their text.
func errorToDetail(err error, status *int) *ErrorDetail {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		*status = http.StatusUnprocessableEntity
		detail := &ErrorDetail{
			Code:    "validation_error",
			Message: "Validation failed",
		}
		if len(valErr) > 0 {
			detail.Details = make(map[string][]string, len(valErr))
			maps.Copy(detail.Details, valErr)
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}
	}

	*status = http.StatusInternalServerError
	return &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

type statusResponse int

func (s statusResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(int(s))
	return nil
}

// Empty responds 204 No Content, as DELETE does.
func Empty() Response {
	return statusResponse(http.StatusNoContent)
}

// EmptyWithStatus responds with status and no body.
func EmptyWithStatus(status int) Response {
	return statusResponse(status)
}
