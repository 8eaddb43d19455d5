package clientip

import (
	"context"
	"log/slog"
)

type clientIPContextKey struct{}

// WithContext stores the client IP in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPContextKey{}, ip)
}

// FromContext returns the client IP stored in ctx, or an empty string.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPContextKey{}).(string)
	return ip
}

// LoggerExtractor returns a logger context extractor that adds the client IP
// under the key "client_ip".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
