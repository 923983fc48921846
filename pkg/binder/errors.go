package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidTag           = errors.New("invalid binding tag")
)
