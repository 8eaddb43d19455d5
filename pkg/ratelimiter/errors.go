package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid rate limit configuration")

	// ErrInvalidTokenCount indicates that the requested token count is invalid.
	ErrInvalidTokenCount = errors.New("invalid token count")

	// ErrStoreUnavailable indicates that the shared store could not be reached.
	ErrStoreUnavailable = errors.New("rate limit store unavailable")
)
