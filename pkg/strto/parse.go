package strto

import (
	"iter"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Parse converts the literal s in the given base to T.
// Pass a subslice to parse a begin/end range of a larger buffer.
func Parse[T constraints.Integer, C Char](s []C, base int) (T, error) {
	mustValidBase(base)
	return parseDigits[T](s, base, safeDigitsFor[T](base))
}

// ParseString is Parse for strings. The string is read in place.
func ParseString[T constraints.Integer](s string, base int) (T, error) {
	return Parse[T](unsafe.Slice(unsafe.StringData(s), len(s)), base)
}

// Atoi parses a base 10 literal.
func Atoi[T constraints.Integer](s string) (T, error) {
	return ParseString[T](s, 10)
}

// MustParseString is like ParseString but panics with the *Error on failure.
func MustParseString[T constraints.Integer](s string, base int) T {
	v, err := ParseString[T](s, base)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseCString parses a zero-terminated literal: only the code units before
// the first zero take part. A slice without a zero unit is parsed whole.
func ParseCString[T constraints.Integer, C Char](s []C, base int) (T, error) {
	return Parse[T](s[:terminated(s)], base)
}

// ParseSeq parses a literal delivered one code unit at a time.
// The sequence is consumed at most once and abandoned on the first failure.
func ParseSeq[T constraints.Integer, C Char](seq iter.Seq[C], base int) (T, error) {
	mustValidBase(base)

	var (
		lit      = LiteralsOf[C]()
		safe     = safeDigitsFor[T](base)
		acc      accumulator[T]
		negative bool
		pos, n   int
	)
	for c := range seq {
		if pos == 0 && (c == lit.Plus || c == lit.Minus) {
			negative = c == lit.Minus
			pos++
			continue
		}
		if n == 0 {
			acc = newAccumulator[T](base, negative)
		}

		d, ok := digit[T](c, base, &lit)
		if !ok {
			return 0, badDigit(uint32(c), base, pos)
		}
		if n < safe {
			acc.foldUnchecked(d)
		} else if !acc.fold(d) {
			return 0, acc.overflow(pos)
		}
		n++
		pos++
	}
	if n == 0 {
		return 0, noDigits(base, pos)
	}
	return acc.result()
}

// parseDigits folds the first safe digits without bounds checks and the rest
// with them. safe must not exceed SafeDigits for (T, base).
func parseDigits[T constraints.Integer, C Char](s []C, base, safe int) (T, error) {
	lit := LiteralsOf[C]()
	negative, digits := readSign(s, &lit)
	offset := len(s) - len(digits)
	if len(digits) == 0 {
		return 0, noDigits(base, offset)
	}

	acc := newAccumulator[T](base, negative)
	safe = min(safe, len(digits))
	for i, c := range digits[:safe] {
		d, ok := digit[T](c, base, &lit)
		if !ok {
			return 0, badDigit(uint32(c), base, offset+i)
		}
		acc.foldUnchecked(d)
	}

	offset += safe
	for i, c := range digits[safe:] {
		d, ok := digit[T](c, base, &lit)
		if !ok {
			return 0, badDigit(uint32(c), base, offset+i)
		}
		if !acc.fold(d) {
			return 0, acc.overflow(offset + i)
		}
	}
	return acc.result()
}

func terminated[C Char](s []C) int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return len(s)
}
