package binder

import (
	"net/http"
)

// BindQuery creates a query parameter binder function.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//   - `query:"name,base=16"` - parses an integer field in base 16
//   - `query:"name,base=auto"` - picks the base from a 0x, 0o or 0b prefix
//
// Supported types:
//   - string, bool, float32, float64 and every integer type
//   - Slices of those for multi-value parameters
//   - Pointers for optional fields
func BindQuery(opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		return bindToStruct(r, v, "query", r.URL.Query(), ErrInvalidQuery, o)
	}
}
