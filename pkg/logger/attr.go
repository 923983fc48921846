package logger

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/strto/pkg/strto"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Conversion finds the first *strto.Error in err's chain and logs its
// details under the key "conversion". Errors of any other origin yield an
// empty Attr.
func Conversion(err error) slog.Attr {
	var cerr *strto.Error
	if !errors.As(err, &cerr) {
		return slog.Attr{}
	}
	return slog.Any("conversion", cerr)
}

// Field records a struct field or variable name under the key "field".
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Input records the raw text that was fed to a conversion.
func Input(s string) slog.Attr {
	return slog.String("input", s)
}

// Base records the numeric base of a conversion. Zero means the base was
// detected from a literal prefix and is logged as "auto".
func Base(base int) slog.Attr {
	if base == 0 {
		return slog.String("base", "auto")
	}
	return slog.Int("base", base)
}

// Component records the subsystem that emitted the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
