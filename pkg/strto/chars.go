package strto

import "unsafe"

// Char is the set of code unit types accepted as input: bytes, UTF-16 code
// units, runes and UTF-32 code units.
type Char interface {
	~byte | ~uint16 | ~int32 | ~uint32
}

// Encoding tags the width of a code unit type.
type Encoding uint8

const (
	Narrow Encoding = iota + 1
	UTF16
	UTF32
)

func (e Encoding) String() string {
	switch e {
	case Narrow:
		return "narrow"
	case UTF16:
		return "utf16"
	case UTF32:
		return "utf32"
	default:
		return "unknown"
	}
}

// EncodingOf reports the encoding tag of the code unit type C.
func EncodingOf[C Char]() Encoding {
	var zero C
	switch unsafe.Sizeof(zero) {
	case 1:
		return Narrow
	case 2:
		return UTF16
	default:
		return UTF32
	}
}

// Literals holds the code units that digit and sign recognition is anchored on.
type Literals[C Char] struct {
	Zero   C
	SmallA C
	BigA   C
	Plus   C
	Minus  C
}

// LiteralsOf returns the literal table for the code unit type C.
// All supported encodings share the ASCII ordinals for these characters.
func LiteralsOf[C Char]() Literals[C] {
	return Literals[C]{
		Zero:   '0',
		SmallA: 'a',
		BigA:   'A',
		Plus:   '+',
		Minus:  '-',
	}
}
