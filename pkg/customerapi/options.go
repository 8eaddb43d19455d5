package customerapi

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its transport is used
// as is; wrap it with requestid.Transport to keep request id propagation.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRetries sets how many times a failed read is retried.
func WithRetries(n uint64) Option {
	return func(c *Client) {
		c.retries = n
	}
}

// WithBackoff sets the base delay of the exponential retry backoff.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.backoff = d
		}
	}
}
