// Package strto converts integer literals into fixed-width Go integers
// without ever leaving the target type's range.
//
// A literal is an optional '+' or '-' followed by one or more digits in a
// base between 2 and 36. Digits above 9 are the letters a-z or A-Z. The
// target type is chosen by the caller through a type parameter and may be any
// signed or unsigned integer type, including named types such as
// time.Duration.
//
// # Overflow Safety
//
// Each digit is folded into the result with a multiply-add (positive
// literals) or a multiply-subtract (negative literals). Before every fold the
// package proves that neither the multiplication nor the addition can leave
// the representable range, using only arithmetic inside the target type.
// Negative literals accumulate towards the minimum, so the minimum of a
// two's-complement type is reachable without forming its unrepresentable
// positive counterpart.
//
// The first SafeDigits[T](base) digits of any literal can never overflow, so
// they are folded without checks. The remaining digits go through the checked
// fold. Results are identical to a fully checked loop.
//
// # Input Types
//
// Inputs are slices of code units: bytes (strings are viewed as bytes without
// copying), UTF-16 code units and runes or other 32-bit units. Code units are
// compared by ordinal value only; no decoding happens.
//
//	n, err := strto.ParseString[int32]("-80000000", 16)
//	// n == math.MinInt32
//
//	port, err := strto.Atoi[uint16]("8080")
//
//	w, err := strto.Parse[int64](utf16.Encode([]rune("-42")), 10)
//
//	c, err := strto.ParseCString[uint8]([]byte("255\x00garbage"), 10)
//	// c == 255
//
// # Error Handling
//
// Every failure is returned as *Error and matches one of the sentinels below
// through errors.Is:
//
//   - ErrConversion: umbrella for anything returned by this package.
//   - ErrInvalidInput: bad digit, or no digits after the optional sign.
//   - ErrOutOfBounds: well formed literal whose value does not fit.
//
// A lone "-" is ErrInvalidInput for every target type, signed or unsigned.
// "-0" is zero for unsigned types, any other negative literal is
// ErrOutOfBounds.
//
// A base outside [MinBase, MaxBase] is a programming error and panics with
// ErrInvalidBase.
package strto
