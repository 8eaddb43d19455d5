package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrInvalidPattern is returned when a deny-list pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrFailedToParsePatterns is returned when a pattern file cannot be decoded.
	ErrFailedToParsePatterns = errors.New("failed to parse pattern file")

	// ErrEmptyPatternSet is returned when a pattern file contains no patterns.
	ErrEmptyPatternSet = errors.New("pattern set is empty")
)
