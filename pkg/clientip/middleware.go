package clientip

import "net/http"

// Middleware resolves the client IP with FromRequest and stores it in the
// request context.
func Middleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), FromRequest(r, trustProxy))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
