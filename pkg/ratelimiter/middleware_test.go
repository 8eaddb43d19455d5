package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/customerdesk/pkg/clientip"
	"github.com/dmitrymomot/customerdesk/pkg/ratelimiter"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, errors.New("store down")
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	denied := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })

	h := clientip.Middleware(false)(
		ratelimiter.Middleware(b, ratelimiter.ByClientIP("submit"), ratelimiter.WithDeniedHandler(denied))(ok),
	)

	send := func(remote string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/customers", nil)
		r.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	first := send("198.51.100.1:1000")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, first.Header().Get("X-RateLimit-Reset"))

	second := send("198.51.100.1:1001")
	assert.Equal(t, http.StatusTeapot, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, second.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusNoContent, send("198.51.100.2:1000").Code)
}

func TestMiddleware_SkipsEmptyKey(t *testing.T) {
	t.Parallel()

	mw := ratelimiter.Middleware(failingLimiter{}, ratelimiter.ByClientIP("submit"))
	w := httptest.NewRecorder()
	mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMiddleware_LimiterError(t *testing.T) {
	t.Parallel()

	var got error
	mw := ratelimiter.Middleware(failingLimiter{},
		func(*http.Request) string { return "key" },
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
			got = err
			w.WriteHeader(http.StatusServiceUnavailable)
		}),
	)

	w := httptest.NewRecorder()
	mw(http.NotFoundHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.EqualError(t, got, "store down")
}
