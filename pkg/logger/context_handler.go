package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor pulls one attribute out of a record's context. ok is false
// when the context carries nothing to log.
type ContextExtractor func(ctx context.Context) (attr slog.Attr, ok bool)

// ContextHandler appends the attributes produced by its extractors to every
// record before passing it on.
type ContextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are dropped. Wrapping another
// ContextHandler yields a single handler running both sets of extractors, so
// layers that each add extractors do not stack wrappers.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	var inherited []ContextExtractor
	if ch, ok := next.(*ContextHandler); ok {
		next, inherited = ch.Handler, ch.extractors
	}

	all := slices.Clip(inherited)
	for _, ex := range extractors {
		if ex != nil {
			all = append(all, ex)
		}
	}
	return &ContextHandler{Handler: next, extractors: all}
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
