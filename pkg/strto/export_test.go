package strto

import "golang.org/x/exp/constraints"

// ParseChecked runs every digit through the bounds-checked fold.
func ParseChecked[T constraints.Integer, C Char](s []C, base int) (T, error) {
	mustValidBase(base)
	return parseDigits[T](s, base, 0)
}
