// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers for reporting integer conversion failures.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler by Format, applies
// static attributes and wraps the result in a ContextHandler, which runs the
// registered ContextExtractor callbacks for every record. Packages that take
// a *slog.Logger from their caller can add their own extractors with
// NewContextHandler without nesting handlers.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("importer"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
//	n, err := strto.ParseString[uint16](raw, 16)
//	if err != nil {
//	    log.DebugContext(ctx, "rejected port",
//	        logger.Input(raw),
//	        logger.Base(16),
//	        logger.Conversion(err),
//	    )
//	}
//
// # Options
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment set
//     level, format and the "service" and "env" attributes. ParseEnvironment
//     turns a stage name such as "prod" into an Environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter override the format.
//     WithFormat panics on unknown formats.
//   - WithLevel, WithOutput, WithHandlerOptions tune the handler.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context.
//
// Error, Errors, Field and Conversion return an empty slog.Attr for empty
// input, so they can be passed unconditionally.
package logger
