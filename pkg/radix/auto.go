package radix

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/dmitrymomot/strto/pkg/strto"
)

// ParseAuto parses a literal whose base is given by an optional prefix after
// the sign: 0x/0X, 0o/0O or 0b/0B. Unprefixed literals are decimal.
func ParseAuto[T constraints.Integer](s string) (T, error) {
	sign, body := "", s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign, body = s[:1], s[1:]
	}

	base, digits := splitPrefix(body)
	if base == 10 {
		return strto.ParseString[T](s, 10)
	}

	prefix := len(body) - len(digits)
	if digits == "" {
		return 0, &strto.Error{
			Kind:   strto.ErrInvalidInput,
			Reason: "no digits after base prefix",
			Base:   base,
			Offset: len(s),
		}
	}
	if digits[0] == '+' || digits[0] == '-' {
		// A second sign would be taken as the literal's sign by the core.
		_, err := strto.Digit(digits[0], base)
		return 0, moveOffset(err, func(int) int { return len(sign) + prefix })
	}

	v, err := strto.ParseString[T](sign+digits, base)
	if err != nil {
		return 0, moveOffset(err, func(off int) int {
			if off < len(sign) {
				return off
			}
			return off + prefix
		})
	}
	return v, nil
}

func splitPrefix(s string) (int, string) {
	if len(s) < 2 || s[0] != '0' {
		return 10, s
	}
	switch s[1] {
	case 'x', 'X':
		return 16, s[2:]
	case 'o', 'O':
		return 8, s[2:]
	case 'b', 'B':
		return 2, s[2:]
	}
	return 10, s
}

// moveOffset maps the failure offset of a core error back onto the full
// literal.
func moveOffset(err error, to func(int) int) error {
	var convErr *strto.Error
	if errors.As(err, &convErr) {
		convErr.Offset = to(convErr.Offset)
	}
	return err
}
