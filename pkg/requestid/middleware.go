package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// stores it in the request context and echoes it in the response header.
// Client supplied ids are restricted to [a-zA-Z0-9_-] so they are safe to log.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !isValidRequestID(requestID) {
			requestID = uuid.New().String()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// Transport forwards the request id found in the outgoing request context to
// the upstream service. A nil base uses http.DefaultTransport.
func Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		id := FromContext(req.Context())
		if id == "" || req.Header.Get(Header) != "" {
			return base.RoundTrip(req)
		}
		req = req.Clone(req.Context())
		req.Header.Set(Header, id)
		return base.RoundTrip(req)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
