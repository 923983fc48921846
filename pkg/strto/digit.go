package strto

import "golang.org/x/exp/constraints"

const (
	// MinBase is the smallest supported base.
	MinBase = 2
	// MaxBase is the largest supported base: ten decimal digits plus 26 letters.
	MaxBase = 36
)

// Digit returns the value of c as a digit in the given base.
// It fails with ErrInvalidInput when c is not a digit of that base.
func Digit[C Char](c C, base int) (int, error) {
	mustValidBase(base)
	lit := LiteralsOf[C]()
	if d, ok := digit[int](c, base, &lit); ok {
		return d, nil
	}
	return 0, badDigit(uint32(c), base, 0)
}

func digit[T constraints.Integer, C Char](c C, base int, lit *Literals[C]) (T, bool) {
	if base <= 10 {
		if c >= lit.Zero && c <= lit.Zero+C(base-1) {
			return T(c - lit.Zero), true
		}
		return 0, false
	}

	switch {
	case c >= lit.Zero && c <= lit.Zero+9:
		return T(c - lit.Zero), true
	case c >= lit.SmallA && c <= lit.SmallA+C(base-11):
		return T(c-lit.SmallA) + 10, true
	case c >= lit.BigA && c <= lit.BigA+C(base-11):
		return T(c-lit.BigA) + 10, true
	}
	return 0, false
}
