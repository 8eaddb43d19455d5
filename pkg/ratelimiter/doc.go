// Package ratelimiter throttles requests with a token bucket.
//
// A Bucket allows bursts up to Capacity and refills RefillRate tokens every
// RefillInterval. MemoryStore keeps bucket state in process and evicts keys
// idle for an hour. Requests that are denied do not consume tokens.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, cfg.SubmitLimit)
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP("submit"))).Post("/customers", create)
//
// ByClientIP reads the address resolved by clientip.Middleware, so that
// middleware must run first.
package ratelimiter
