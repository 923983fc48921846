package radix

import "errors"

// ErrNotScalar is returned when a YAML node holding an integer is a mapping,
// sequence or alias.
var ErrNotScalar = errors.New("integer must be a scalar node")

// ErrUnquoted is returned when a JSON value for a non-decimal Int is not a
// string.
var ErrUnquoted = errors.New("integer in a non-decimal base must be a JSON string")
