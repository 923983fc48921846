package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Environment names a deployment stage. Each stage maps to a preset of level
// and format and is logged under the key "env".
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

type preset struct {
	level  slog.Level
	format Format
}

var presets = map[Environment]preset{
	Development: {level: slog.LevelDebug, format: FormatText},
	Staging:     {level: slog.LevelInfo, format: FormatJSON},
	Production:  {level: slog.LevelInfo, format: FormatJSON},
}

// ParseEnvironment maps a stage name, case-insensitively, to an Environment.
// "prod" and "stage" are accepted as short forms; anything unknown is
// Development.
func ParseEnvironment(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// Option configures logger creation.
type Option func(*config)

type config struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format. Panics for anything but FormatJSON or
// FormatText.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(c *config) { c.format = f }
}

func WithTextFormatter() Option { return WithFormat(FormatText) }

func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput sets the output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions replaces the handler options built from WithLevel.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors registers functions that pull attributes from the
// context of each record.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) { c.extractors = append(c.extractors, extractors...) }
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
func WithContextValue(name string, key any) Option {
	if name == "" || key == nil {
		return func(*config) {}
	}
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(key); v != nil {
			return slog.Any(name, v), true
		}
		return slog.Attr{}, false
	})
}

// WithEnvironment applies the preset of env and stamps every record with
// "service" and "env". An empty service name leaves the configuration
// untouched.
func WithEnvironment(env Environment, service string) Option {
	return func(c *config) {
		if service == "" {
			return
		}
		p, ok := presets[env]
		if !ok {
			env, p = Development, presets[Development]
		}
		c.level, c.format = p.level, p.format
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", string(env)),
		)
	}
}

// WithDevelopment logs text at debug level, which is where rejected binder
// fields become visible.
func WithDevelopment(service string) Option { return WithEnvironment(Development, service) }

func WithStaging(service string) Option { return WithEnvironment(Staging, service) }

func WithProduction(service string) Option { return WithEnvironment(Production, service) }

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a *slog.Logger. Without options it writes JSON at info level to
// stdout. The handler is always a *ContextHandler, so extractors added later
// through NewContextHandler join the ones registered here.
func New(opts ...Option) *slog.Logger {
	cfg := &config{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	var h slog.Handler
	switch cfg.format {
	case FormatText:
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(h, cfg.extractors...))
}
