package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// BindForm creates a binder for application/x-www-form-urlencoded bodies.
// Tags and supported types are the same as for BindQuery, under the `form` key.
func BindForm(opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}

		// Extract media type without parameters
		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(r, v, "form", r.PostForm, ErrInvalidForm, o)
	}
}
