package environment

import (
	"context"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	// Development for local work. Logs are human readable.
	Development Environment = "development"
	// Production for deployed instances. Logs are one JSON object per line.
	Production Environment = "production"
	// Staging for pre-production deployments.
	Staging Environment = "staging"
)

// Parse maps a configuration value to an Environment.
// Short aliases ("prod", "stage", "dev") are accepted; anything unknown
// falls back to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether e is Production or its alias.
func (e Environment) IsProduction() bool {
	return e == Production || e == "prod"
}

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx).IsProduction()
}

// IsDevelopment checks if the environment from context is development
func IsDevelopment(ctx context.Context) bool {
	env := FromContext(ctx)
	return env == Development || env == "dev"
}
