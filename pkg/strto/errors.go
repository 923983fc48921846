package strto

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrConversion is the umbrella for every failure returned by this package.
	ErrConversion = errors.New("conversion failure")

	// ErrInvalidInput is returned when the text is not an integer literal in the given base.
	ErrInvalidInput = fmt.Errorf("%w: invalid input", ErrConversion)

	// ErrOutOfBounds is returned when a well formed literal does not fit the target type.
	ErrOutOfBounds = fmt.Errorf("%w: out of bounds", ErrConversion)

	// ErrInvalidBase is the panic value for a base outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("invalid base")
)

// Error describes a failed conversion.
type Error struct {
	// Kind is ErrInvalidInput or ErrOutOfBounds.
	Kind error
	// Reason is a human-readable description of the failure.
	Reason string
	// Base is the base the literal was parsed in.
	Base int
	// Offset is the index of the code unit where the failure was detected.
	Offset int
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Reason
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// LogValue renders the error as a group so structured loggers keep the
// failure details as separate attributes.
func (e *Error) LogValue() slog.Value {
	kind := "invalid_input"
	if errors.Is(e.Kind, ErrOutOfBounds) {
		kind = "out_of_bounds"
	}
	return slog.GroupValue(
		slog.String("kind", kind),
		slog.String("reason", e.Reason),
		slog.Int("base", e.Base),
		slog.Int("offset", e.Offset),
	)
}

func badDigit(ord uint32, base, offset int) *Error {
	return &Error{
		Kind:   ErrInvalidInput,
		Reason: fmt.Sprintf("bad digit: %d, base = %d", ord, base),
		Base:   base,
		Offset: offset,
	}
}

func noDigits(base, offset int) *Error {
	return &Error{Kind: ErrInvalidInput, Reason: "no digits", Base: base, Offset: offset}
}

func outOfBounds(reason string, base, offset int) *Error {
	return &Error{Kind: ErrOutOfBounds, Reason: reason, Base: base, Offset: offset}
}

func mustValidBase(base int) {
	if base < MinBase || base > MaxBase {
		panic(fmt.Errorf("%w: %d, must be within [%d, %d]", ErrInvalidBase, base, MinBase, MaxBase))
	}
}
