package ratelimiter

import (
	"context"
	"fmt"
)

// RateLimiter decides whether a request identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// Bucket is a token bucket rate limiter backed by a Store.
type Bucket struct {
	store  Store
	config Config
}

// NewBucket validates config and creates a Bucket.
func NewBucket(store Store, config Config) (*Bucket, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, config: config}, nil
}

// Allow consumes a single token.
func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens at once.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	return b.consume(ctx, key, n)
}

// Status returns the current state without consuming tokens.
func (b *Bucket) Status(ctx context.Context, key string) (*Result, error) {
	return b.consume(ctx, key, 0)
}

// Reset forgets the state for key.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

func (b *Bucket) consume(ctx context.Context, key string, n int) (*Result, error) {
	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, n, b.config)
	if err != nil {
		return nil, err
	}
	return &Result{
		Limit:     b.config.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
