package binder

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/strto/pkg/logger"
)

// Option configures a binder.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	extractors []logger.ContextExtractor
}

// WithLogger sets the logger used to report rejected fields. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithContextExtractors adds request-scoped attributes, such as a request id
// stored in the request context, to every rejected field record.
func WithContextExtractors(extractors ...logger.ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	base := o.logger
	if base == nil {
		base = logger.New(logger.WithOutput(io.Discard))
	}
	h := logger.NewContextHandler(base.Handler(), o.extractors...)
	o.logger = slog.New(h).With(logger.Component("binder"))
	return o
}
