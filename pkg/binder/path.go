package binder

import (
	"net/http"
)

// Path creates a path parameter binder function using the provided extractor.
// The extractor is called with the parameter name of each tagged field.
//
// Tags use the `path` key with the same options as BindQuery.
//
// Example with chi router:
//
//	type ObjectRequest struct {
//		Bucket uint16 `path:"bucket"`
//		Object uint64 `path:"object,base=16"`
//	}
//
//	r := chi.NewRouter()
//	r.Get("/buckets/{bucket}/objects/{object}", func(w http.ResponseWriter, r *http.Request) {
//		var req ObjectRequest
//		if err := binder.Path(chi.URLParam)(r, &req); err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//	})
func Path(extractor func(r *http.Request, fieldName string) string, opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return wrapf(ErrInvalidPath, "extractor function is nil")
		}
		return bindFields(r, v, "path", ErrInvalidPath, o, func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		})
	}
}
