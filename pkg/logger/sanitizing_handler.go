package logger

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/customerdesk/pkg/sanitizer"
)

// SanitizingHandler rewrites every record so that no message, key or value
// can carry line breaks, control characters or ANSI escape sequences.
// String and arbitrary values go through sanitizer.ForLog, errors through
// sanitizer.ErrorForLog. Numbers, booleans, times and durations pass through
// unchanged.
type SanitizingHandler struct {
	next slog.Handler
}

// NewSanitizingHandler wraps next.
func NewSanitizingHandler(next slog.Handler) slog.Handler {
	return &SanitizingHandler{next: next}
}

func (h *SanitizingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *SanitizingHandler) Handle(ctx context.Context, rec slog.Record) error {
	clean := slog.NewRecord(rec.Time, rec.Level, sanitizer.ForLog(rec.Message), rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(sanitizeAttr(a))
		return true
	})
	return h.next.Handle(ctx, clean)
}

func (h *SanitizingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		clean = append(clean, sanitizeAttr(a))
	}
	return &SanitizingHandler{next: h.next.WithAttrs(clean)}
}

func (h *SanitizingHandler) WithGroup(name string) slog.Handler {
	return &SanitizingHandler{next: h.next.WithGroup(sanitizer.ForLog(name))}
}

func sanitizeAttr(a slog.Attr) slog.Attr {
	if a.Equal(slog.Attr{}) {
		return a
	}

	key := sanitizer.ForLog(a.Key)
	v := a.Value.Resolve()

	switch v.Kind() {
	case slog.KindString:
		return slog.String(key, sanitizer.ForLog(v.String()))
	case slog.KindGroup:
		group := v.Group()
		clean := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			clean = append(clean, sanitizeAttr(ga))
		}
		return slog.Attr{Key: key, Value: slog.GroupValue(clean...)}
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return slog.String(key, sanitizer.ErrorForLog(err))
		}
		return slog.String(key, sanitizer.ForLog(v.Any()))
	default:
		return slog.Attr{Key: key, Value: v}
	}
}
