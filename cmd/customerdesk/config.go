package main

import (
	"time"

	"github.com/dmitrymomot/customerdesk/pkg/customerapi"
	"github.com/dmitrymomot/customerdesk/pkg/httpserver"
	"github.com/dmitrymomot/customerdesk/pkg/ratelimiter"
	"github.com/dmitrymomot/customerdesk/pkg/redis"
)

// Config is the customerdesk process configuration, read from the
// environment and an optional .env file.
type Config struct {
	Env              string        `env:"APP_ENV" envDefault:"development"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"customerdesk"`
	LogLevel         string        `env:"LOG_LEVEL"`
	PatternsFile     string        `env:"DANGEROUS_PATTERNS_FILE"`
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"2s"`

	// TrustProxyHeaders enables X-Forwarded-For and friends for client IPs.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	HTTP        httpserver.Config
	CustomerAPI customerapi.Config
	SubmitLimit ratelimiter.Config
	Redis       redis.Config
}
