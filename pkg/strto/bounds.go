package strto

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// safeDigits[width][signed][base] is the number of leading digits that can be
// folded into an integer of that shape without any chance of overflow.
var safeDigits = buildSafeDigits()

func buildSafeDigits() (t [4][2][MaxBase + 1]uint8) {
	for w := range t {
		bits := uint(8) << w
		for s := range t[w] {
			hi := ^uint64(0) >> (64 - bits)
			if s == 1 {
				hi >>= 1
			}
			for base := MinBase; base <= MaxBase; base++ {
				var n uint8
				for v := hi; v >= uint64(base); v /= uint64(base) {
					n++
				}
				t[w][s][base] = n
			}
		}
	}
	return t
}

// SafeDigits returns how many digits in the given base always fit T,
// whatever their values: base^n - 1 never exceeds T's maximum.
func SafeDigits[T constraints.Integer](base int) int {
	mustValidBase(base)
	return safeDigitsFor[T](base)
}

func safeDigitsFor[T constraints.Integer](base int) int {
	var zero T
	signed := 0
	if isSigned[T]() {
		signed = 1
	}
	return int(safeDigits[widthIndex(unsafe.Sizeof(zero))][signed][base])
}

func widthIndex(size uintptr) int {
	switch size {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	default:
		return 3
	}
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < 0
}

// limits returns the smallest and largest values of T.
func limits[T constraints.Integer]() (lo, hi T) {
	var zero T
	if !isSigned[T]() {
		return 0, ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	hi = T(^uint64(0) >> (65 - bits))
	return -hi - 1, hi
}
