package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/customerdesk/pkg/logger"
	"github.com/dmitrymomot/customerdesk/pkg/sanitizer"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestConsole_Development(t *testing.T) {
	t.Parallel()

	t.Run("each argument sanitized and kept separate", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		c := logger.NewConsole(buf, logger.ModeDevelopment)

		c.Log("Normal log\nFAKE LOG: Admin password is 12345", 42, nil)
		assert.Equal(t, "Normal log FAKE LOG: Admin password is 12345 42 null\n", buf.String())
	})

	t.Run("error uses name and message", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		c := logger.NewConsole(buf, logger.ModeDevelopment)

		c.Error("failed:", errors.New("boom\nnext"), nil)
		assert.Equal(t,
			`failed: {"name":"errors.errorString","message":"boom next"} Unknown error`+"\n",
			buf.String(),
		)
	})

	t.Run("warn and error go to the error output", func(t *testing.T) {
		t.Parallel()

		out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
		c := logger.NewConsole(out, logger.ModeDevelopment, logger.WithErrorOutput(errOut))

		c.Info("info")
		c.Warn("warn")
		c.Error("error")

		assert.Equal(t, "info\n", out.String())
		assert.Equal(t, "warn\nerror\n", errOut.String())
	})
}

func TestConsole_Production(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		call  func(c *logger.Console)
		level string
		msg   string
	}{
		{
			name:  "log",
			call:  func(c *logger.Console) { c.Log("user", "bob\nADMIN", 7) },
			level: "info",
			msg:   "user bob ADMIN 7",
		},
		{
			name:  "info",
			call:  func(c *logger.Console) { c.Info("\x1b[32mready\x1b[0m") },
			level: "info",
			msg:   "ready",
		},
		{
			name:  "warn",
			call:  func(c *logger.Console) { c.Warn("slow", "request") },
			level: "warn",
			msg:   "slow request",
		},
		{
			name:  "error",
			call:  func(c *logger.Console) { c.Error("failed", errors.New("x")) },
			level: "error",
			msg:   `failed {"name":"errors.errorString","message":"x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			c := logger.NewConsole(buf, logger.ModeProduction, logger.WithClock(fixedClock))
			tt.call(c)

			line := buf.String()
			require.True(t, strings.HasSuffix(line, "\n"))
			assert.Equal(t, 1, strings.Count(line, "\n"))

			var entry sanitizer.LogEntry
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
			assert.Equal(t, "2024-01-02T03:04:05.000Z", entry.Timestamp)
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.msg, entry.Message)
		})
	}
}

func TestConsole_ModeIsFixed(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	buf := &bytes.Buffer{}
	c := logger.NewConsole(buf, logger.ModeDevelopment)
	c.Log("plain")

	assert.Equal(t, logger.ModeDevelopment, c.Mode())
	assert.Equal(t, "plain\n", buf.String())
}
