package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state per key.
type Store interface {
	// ConsumeTokens takes tokens from the bucket for key, refilling it first.
	// A negative remaining count means the request must be denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the state for key.
	Reset(ctx context.Context, key string) error
}
