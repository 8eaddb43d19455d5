package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler adds the attributes produced by its extractors to every
// record before passing it on. It sits outermost in the handler chain so the
// request id and client IP go through SanitizingHandler like any other value.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are dropped; with none left
// next is returned unchanged.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	extractors = slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool { return ex == nil })
	if len(extractors) == 0 {
		return next
	}
	return &ContextHandler{next: next, extractors: extractors}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	var attrs []slog.Attr
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			attrs = append(attrs, attr)
		}
	}
	if len(attrs) > 0 {
		rec = rec.Clone()
		rec.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
