package ratelimiter

import "time"

// Result contains the outcome of a rate limit check.
type Result struct {
	Limit     int       // Bucket capacity
	Remaining int       // Tokens left; negative when the request was denied
	ResetAt   time.Time // Next refill
}

// Allowed reports whether the request fits in the bucket.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next request.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Config defines the token bucket used to throttle form submissions.
// Capacity is the burst limit; RefillRate tokens are added every RefillInterval.
type Config struct {
	Capacity       int           `env:"SUBMIT_RATE_CAPACITY" envDefault:"20"`
	RefillRate     int           `env:"SUBMIT_RATE_REFILL" envDefault:"5"`
	RefillInterval time.Duration `env:"SUBMIT_RATE_INTERVAL" envDefault:"1m"`
	Disabled       bool          `env:"SUBMIT_RATE_DISABLED" envDefault:"false"`
}
