// Package radix decodes integers written in a fixed or prefixed base from
// text, JSON and YAML documents.
//
// Int[T, B] pairs an integer type T with a base marker B and implements
// encoding.TextUnmarshaler, json.Unmarshaler and yaml.Unmarshaler, so it can
// be used directly as a field of configuration structs:
//
//	type Settings struct {
//	    Mask  radix.Int[uint32, radix.Hex] `yaml:"mask" json:"mask" env:"MASK"`
//	    Mode  radix.Int[uint16, radix.Oct] `yaml:"mode" json:"mode" env:"MODE"`
//	    Flags radix.Int[uint8, radix.Bin]  `yaml:"flags" json:"flags" env:"FLAGS"`
//	}
//
// With mask: ff, mode: "0755" and flags: 101 the fields hold 255, 493 and 5.
// Values are range checked against T: flags: 100000000 fails with
// strto.ErrOutOfBounds.
//
// JSON values must be strings unless the base is Dec: {"mask":"ff"} decodes,
// {"mask":255} fails with ErrUnquoted rather than being read as hex digits.
//
// ParseAuto picks the base from a literal prefix: 0x or 0X for 16, 0o or 0O
// for 8 and 0b or 0B for 2. Anything else is decimal; a leading zero does not
// select octal.
//
//	v, err := radix.ParseAuto[int8]("-0x80") // -128
//
// Decoding errors are the strto errors, so errors.Is(err,
// strto.ErrInvalidInput) and errors.Is(err, strto.ErrOutOfBounds) work on
// anything returned here. YAML nodes that are not scalars fail with
// ErrNotScalar.
package radix
