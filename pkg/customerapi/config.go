package customerapi

import "time"

// Config holds the Customer API client settings.
type Config struct {
	BaseURL string        `env:"CUSTOMER_API_URL" envDefault:"http://localhost:8000/api"`
	Timeout time.Duration `env:"CUSTOMER_API_TIMEOUT" envDefault:"10s"`
	Retries uint64        `env:"CUSTOMER_API_RETRIES" envDefault:"3"`
	Backoff time.Duration `env:"CUSTOMER_API_BACKOFF" envDefault:"200ms"`
}

// NewFromConfig creates a Client from cfg. Options are applied after the
// config values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithTimeout(cfg.Timeout),
		WithRetries(cfg.Retries),
		WithBackoff(cfg.Backoff),
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}
