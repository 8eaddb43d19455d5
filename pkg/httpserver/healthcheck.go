package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/customerdesk/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// LivenessHandler always answers 200 "ALIVE".
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// ReadinessHandler runs every check with the request context bounded by
// timeout. It answers 200 "READY" when all pass and 503 "NOT_READY" otherwise.
func ReadinessHandler(log *slog.Logger, timeout time.Duration, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		for _, check := range checks {
			if err := check(ctx); err != nil {
				if log != nil {
					log.WarnContext(ctx, "readiness check failed", logger.Error(err))
				}
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
