package config

import "errors"

var (
	// ErrParsingConfig wraps any failure of the env parser, integer decoding included.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfigType is returned when Load is given a pointer to a non-struct type.
	ErrInvalidConfigType = errors.New("invalid config type")

	// ErrConfigNotLoaded is returned when a concurrent load of the same type failed.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
