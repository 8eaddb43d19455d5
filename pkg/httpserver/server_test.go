package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/customerdesk/pkg/httpserver"
)

func startServer(t *testing.T, srv *httpserver.Server, ctx context.Context, h http.Handler) <-chan error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", srv.Addr())
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	return done
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("serves until context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		bound := make(chan struct{})
		srv := httpserver.New(
			httpserver.WithAddr("127.0.0.1:0"),
			httpserver.WithShutdownTimeout(100*time.Millisecond),
			httpserver.WithStartHook(func(*slog.Logger) { close(bound) }),
		)
		go func() {
			done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}))
		}()
		<-bound

		resp, err := http.Get("http://" + srv.Addr())
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusTeapot, resp.StatusCode)

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			require.Fail(t, "run did not finish")
		}
	})

	t.Run("manual shutdown", func(t *testing.T) {
		t.Parallel()

		var stopped atomic.Bool
		srv := httpserver.New(
			httpserver.WithAddr("127.0.0.1:0"),
			httpserver.WithStopHook(func(*slog.Logger) { stopped.Store(true) }),
		)
		done := startServer(t, srv, context.Background(), nil)

		require.NoError(t, srv.Shutdown(context.Background()))
		require.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown is a no-op")
		require.NoError(t, <-done)
		assert.True(t, stopped.Load())
	})

	t.Run("second run fails", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
		done := startServer(t, srv, context.Background(), nil)
		defer func() {
			require.NoError(t, srv.Shutdown(context.Background()))
			<-done
		}()

		err := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
		assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
	})

	t.Run("bind error", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()))
		assert.ErrorIs(t, srv.Run(context.Background(), nil), httpserver.ErrStart)
	})

	t.Run("shutdown before run is a no-op", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
		require.NoError(t, srv.Shutdown(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		done := startServer(t, srv, ctx, nil)
		cancel()
		require.NoError(t, <-done)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:9999"})
	assert.Equal(t, "127.0.0.1:9999", srv.Addr())

	srv = httpserver.NewFromConfig(httpserver.Config{}, httpserver.WithAddr("127.0.0.1:1"))
	assert.Equal(t, "127.0.0.1:1", srv.Addr())
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(-1) })
	assert.Panics(t, func() { httpserver.WithReadHeaderTimeout(0) })
	assert.Panics(t, func() { httpserver.WithMaxHeaderBytes(0) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
	assert.Panics(t, func() { httpserver.WithStartHook(nil) })
	assert.Panics(t, func() { httpserver.WithStopHook(nil) })
}

func TestHealthHandlers(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		httpserver.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()

		ok := func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		}
		rec := httptest.NewRecorder()
		httpserver.ReadinessHandler(nil, time.Second, ok)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()

		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		failing := func(context.Context) error { return errors.New("upstream down") }
		rec := httptest.NewRecorder()
		httpserver.ReadinessHandler(log, 0, failing)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}
