package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError represents an HTTP error with status code and a stable machine-readable key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Error code written to JSON bodies (e.g., "not_found")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// 4xx Client Errors
var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict              = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests       = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
)

// 5xx Server Errors
var (
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrBadGateway          = HTTPError{Code: http.StatusBadGateway, Key: "bad_gateway"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
	ErrGatewayTimeout      = HTTPError{Code: http.StatusGatewayTimeout, Key: "gateway_timeout"}
)

// NewHTTPError creates a custom HTTP error with the given status code and key.
//
// Example:
//
//	err := handler.NewHTTPError(http.StatusForbidden, "customer_locked")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
