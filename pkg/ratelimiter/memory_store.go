package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// staleAfter is how long an untouched bucket is kept.
const staleAfter = time.Hour

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore is a Store for a single process.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState
	now     func() time.Time

	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often stale buckets are evicted.
// Zero disables the background sweep.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore creates an in-memory store. Call Close to stop the sweep.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:         make(map[string]*bucketState),
		now:             time.Now,
		cleanupInterval: 5 * time.Minute,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.sweep()
	}

	return ms
}

// ConsumeTokens implements Store.
func (ms *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	b, ok := ms.buckets[key]
	if !ok {
		b = &bucketState{tokens: config.Capacity, lastRefill: now}
		ms.buckets[key] = b
	}

	// Bound the interval count so a long idle period cannot overflow.
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/config.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*config.RefillRate, config.Capacity)
		b.lastRefill = now
	}

	// Denied requests do not dig the bucket deeper.
	remaining := b.tokens - tokens
	if remaining >= 0 {
		b.tokens = remaining
	}
	b.lastAccess = now

	return remaining, b.lastRefill.Add(config.RefillInterval), nil
}

// Reset implements Store.
func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.buckets, key)
	return nil
}

// Len returns the number of tracked keys.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.buckets)
}

// Close stops the background sweep. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	ms.stopOnce.Do(func() { close(ms.stop) })
}

func (ms *MemoryStore) sweep() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeStale()
		case <-ms.stop:
			return
		}
	}
}

func (ms *MemoryStore) removeStale() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, b := range ms.buckets {
		if now.Sub(b.lastAccess) > staleAfter {
			delete(ms.buckets, key)
		}
	}
}
