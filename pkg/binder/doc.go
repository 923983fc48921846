// Package binder binds HTTP query, path and form values to Go structs, decoding
// integer fields with strto.
//
// Integer fields are parsed with the exact width of the field, so a uint8
// field rejects 256 and an int16 field accepts -32768 but not 32768. The base
// of a field defaults to 10 and can be set with a tag option:
//
//	type ListRequest struct {
//	    Page   uint32   `query:"page"`
//	    Color  uint32   `query:"color,base=16"`   // ?color=ff8800
//	    Perms  uint16   `query:"perms,base=8"`    // ?perms=755
//	    Cursor int64    `query:"cursor,base=36"`  // ?cursor=zik0zj
//	    Mask   uint64   `query:"mask,base=auto"`  // ?mask=0b1010 or 0xff
//	    IDs    []int64  `query:"id"`              // ?id=1&id=2 or ?id=1,2
//	    Limit  *int8    `query:"limit"`           // optional
//	    Skip   string   `query:"-"`
//	}
//
// # Binders
//
//   - BindQuery(): URL query parameters.
//   - BindForm(): application/x-www-form-urlencoded bodies.
//   - Path(extractor): path parameters, for example Path(chi.URLParam).
//
// Every binder returns a func(r *http.Request, v any) error and accepts
// options. WithLogger makes the binder log each rejected field at debug level
// with the conversion failure attached and component=binder.
// WithContextExtractors stamps request-scoped values from r.Context() on
// those records:
//
//	bind := binder.BindQuery(
//	    binder.WithLogger(log),
//	    binder.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//	        id := middleware.GetReqID(ctx)
//	        return slog.String("request_id", id), id != ""
//	    }),
//	)
//
// # Error Handling
//
// Field errors wrap both the binder sentinel and the underlying cause, so
// callers can answer with 400 for any ErrInvalidQuery while still telling
// malformed numbers (strto.ErrInvalidInput) from out of range ones
// (strto.ErrOutOfBounds):
//
//	err := binder.BindQuery()(r, &req)
//	switch {
//	case errors.Is(err, strto.ErrOutOfBounds):
//	    // value too large for the field
//	case errors.Is(err, binder.ErrInvalidQuery):
//	    // anything else wrong with the query
//	}
package binder
