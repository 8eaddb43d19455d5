package logger

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/customerdesk/pkg/sanitizer"
)

// Console is a drop-in for ad-hoc print style logging that never writes
// unsanitized input.
//
// In ModeDevelopment every argument is sanitized on its own and the results
// are written space separated on one line. In ModeProduction the sanitized
// arguments are joined into the message of a single JSON log entry.
// The mode is fixed at construction.
type Console struct {
	mu   sync.Mutex
	out  io.Writer
	err  io.Writer
	mode Mode
	now  func() time.Time
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithErrorOutput sends Warn and Error lines to w instead of the main writer.
func WithErrorOutput(w io.Writer) ConsoleOption {
	return func(c *Console) {
		if w != nil {
			c.err = w
		}
	}
}

// WithClock overrides the time source used for production entries.
func WithClock(now func() time.Time) ConsoleOption {
	return func(c *Console) {
		if now != nil {
			c.now = now
		}
	}
}

// NewConsole creates a Console writing to w in the given mode.
func NewConsole(w io.Writer, mode Mode, opts ...ConsoleOption) *Console {
	c := &Console{
		out:  w,
		err:  w,
		mode: mode,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode reports the mode the console was created with.
func (c *Console) Mode() Mode {
	return c.mode
}

// Log writes args at info level.
func (c *Console) Log(args ...any) {
	c.write(c.out, "info", sanitizer.ForLog, args)
}

// Info writes args at info level.
func (c *Console) Info(args ...any) {
	c.write(c.out, "info", sanitizer.ForLog, args)
}

// Warn writes args at warn level.
func (c *Console) Warn(args ...any) {
	c.write(c.err, "warn", sanitizer.ForLog, args)
}

// Error writes args at error level. Error values are reduced to their name
// and message.
func (c *Console) Error(args ...any) {
	c.write(c.err, "error", sanitizer.ErrorForLog, args)
}

func (c *Console) write(w io.Writer, level string, clean func(any) string, args []any) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = clean(arg)
	}

	var line string
	if c.mode == ModeProduction {
		line = sanitizer.NewLogEntry(c.now(), level, strings.Join(parts, " "), nil).String()
	} else {
		line = strings.Join(parts, " ")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(w, line+"\n")
}
