// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv, which reads optional .env files, and
// github.com/caarlos0/env/v11, which maps variables onto struct fields using
// `env` and `envDefault` tags. Each configuration type is parsed once and
// cached for the lifetime of the process; ResetCache clears the cache in tests.
//
//	type Config struct {
//		AppEnv      string `env:"APP_ENV" envDefault:"development"`
//		CustomerAPI string `env:"CUSTOMER_API_URL,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig so callers can match them with errors.Is.
package config
