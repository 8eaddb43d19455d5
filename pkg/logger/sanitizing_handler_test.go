package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/customerdesk/pkg/logger"
)

func TestSanitizingHandler(t *testing.T) {
	t.Run("message and string values are single line", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithSanitizer())

		log.Info("login\nFAKE LOG: admin", slog.String("user", "bob\r\nlevel=ERROR"))

		out := buf.String()
		assert.Equal(t, 1, strings.Count(out, "\n"), "exactly one record line")
		entry := decode(t, buf)
		assert.Equal(t, "login FAKE LOG: admin", entry["msg"])
		assert.Equal(t, "bob level=ERROR", entry["user"])
	})

	t.Run("text output cannot be forged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithMode(logger.ModeDevelopment),
			logger.WithSanitizer(),
		)

		log.Info("ok", slog.String("name", "x\ntime=2020 level=ERROR msg=pwned"))
		assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	})

	t.Run("ansi sequences removed", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithSanitizer())

		log.Warn("\x1b[31mred\x1b[0m", slog.String("k", "\x1b[2Jclear"))
		entry := decode(t, buf)
		assert.Equal(t, "red", entry["msg"])
		assert.Equal(t, "clear", entry["k"])
	})

	t.Run("errors keep only name and message", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithSanitizer())

		log.Error("failed", slog.Any("error", errors.New("boom\nline")))
		assert.Equal(t, `{"name":"errors.errorString","message":"boom line"}`, decode(t, buf)["error"])
	})

	t.Run("non string values pass through", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithSanitizer())

		log.Info("m", slog.Int("n", 3), slog.Bool("ok", true), slog.Duration("d", time.Second))
		entry := decode(t, buf)
		assert.Equal(t, float64(3), entry["n"])
		assert.Equal(t, true, entry["ok"])
		assert.Equal(t, float64(time.Second), entry["d"])
	})

	t.Run("composite values become sanitized strings", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithSanitizer())

		log.Info("m", slog.Any("payload", map[string]string{"a": "b"}))
		assert.Equal(t, `{"a":"b"}`, decode(t, buf)["payload"])
	})

	t.Run("groups are sanitized recursively", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithSanitizer())

		log.Info("m", logger.Group("req", slog.String("path", "/a\n/b")))
		entry := decode(t, buf)
		req, ok := entry["req"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "/a /b", req["path"])
	})

	t.Run("static and extracted attributes are sanitized", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithSanitizer(),
			logger.WithAttr(slog.String("svc", "a\nb")),
			logger.WithContextValue("tenant", key{}),
		)

		ctx := context.WithValue(context.Background(), key{}, "t1\r\nt2")
		log.With(slog.String("child", "c\td")).InfoContext(ctx, "m")

		entry := decode(t, buf)
		assert.Equal(t, "a b", entry["svc"])
		assert.Equal(t, "t1 t2", entry["tenant"])
		assert.Equal(t, "c d", entry["child"])
	})

	t.Run("empty attributes are dropped", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithSanitizer())

		log.Info("m", logger.Error(nil))
		entry := decode(t, buf)
		_, found := entry[""]
		assert.False(t, found)
	})
}
