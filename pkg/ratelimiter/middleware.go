package ratelimiter

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/customerdesk/pkg/clientip"
)

// KeyFunc extracts a rate limit key from the request. An empty key skips
// the check.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the address stored by clientip.Middleware,
// prefixed with scope so separate limiters never share buckets.
func ByClientIP(scope string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientip.FromContext(r.Context())
		if ip == "" {
			return ""
		}
		return scope + ":" + ip
	}
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	denied  http.Handler
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

// WithDeniedHandler sets the handler that answers throttled requests.
// Rate limit headers are already set when it runs.
func WithDeniedHandler(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.denied = h
		}
	}
}

// WithErrorHandler sets the handler for limiter failures.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// Middleware throttles requests with limiter and sets the X-RateLimit-*
// headers. Throttled requests get Retry-After.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		denied: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if secs := int(result.RetryAfter().Seconds()); secs > 0 {
					h.Set("Retry-After", strconv.Itoa(secs))
				}
				cfg.denied.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
