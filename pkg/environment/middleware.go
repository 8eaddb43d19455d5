package environment

import "net/http"

// Middleware attaches env to every request context so handlers and log
// extractors can read it without extra parameters.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), env)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
