package strto

import "golang.org/x/exp/constraints"

// accumulator folds digits into a value of T. value is a valid T before and
// after every fold; negative literals of signed types are built downwards from
// zero so that T's minimum is reachable.
type accumulator[T constraints.Integer] struct {
	base     T
	lo, hi   T
	loDiv    T
	hiDiv    T
	sign     bool // a '-' was read
	downward bool // sign applies to a signed type
	value    T
}

func newAccumulator[T constraints.Integer](base int, negative bool) accumulator[T] {
	lo, hi := limits[T]()
	b := T(base)
	return accumulator[T]{
		base:     b,
		lo:       lo,
		hi:       hi,
		loDiv:    lo / b,
		hiDiv:    hi / b,
		sign:     negative,
		downward: negative && isSigned[T](),
	}
}

// foldUnchecked is only valid for the first SafeDigits digits of a literal.
func (a *accumulator[T]) foldUnchecked(d T) {
	if a.downward {
		a.value = a.value*a.base - d
		return
	}
	a.value = a.value*a.base + d
}

// fold reports false when the next digit would take the result out of range.
func (a *accumulator[T]) fold(d T) bool {
	if a.downward {
		if a.loDiv > a.value {
			return false
		}
		a.value *= a.base
		if a.lo+d > a.value {
			return false
		}
		a.value -= d
		return true
	}

	if a.hiDiv < a.value {
		return false
	}
	a.value *= a.base
	if a.hi-d < a.value {
		return false
	}
	a.value += d
	return true
}

func (a *accumulator[T]) overflow(offset int) *Error {
	if a.downward {
		return outOfBounds("integer too small", int(a.base), offset)
	}
	return outOfBounds("integer too big", int(a.base), offset)
}

// result applies the sign policy for unsigned types: "-0" is zero, any other
// negative magnitude is out of bounds.
func (a *accumulator[T]) result() (T, error) {
	if a.sign && !a.downward && a.value != 0 {
		return 0, outOfBounds("unsigned integers cannot hold negative values", int(a.base), 0)
	}
	return a.value, nil
}
