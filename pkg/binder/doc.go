// Package binder binds HTTP request data to Go structs.
//
// Each binder has the signature func(r *http.Request, v any) error so it can
// be passed to handler.WithBinder. Binders never modify the values they read:
// what the client sent is what the handler validates.
//
// # Available Binders
//
//   - JSON(): strict JSON body decoding (unknown fields rejected, 1MB limit)
//   - Form(): application/x-www-form-urlencoded bodies using `form` tags
//   - Body(): JSON or Form, selected by the Content-Type header
//   - Query(): URL query parameters using `query` tags
//   - Path(extractor): router path parameters using `path` tags
//
// # Usage
//
//	type UpdateCustomerRequest struct {
//		ID        string `path:"id"`
//		FirstName string `json:"firstName" form:"firstName"`
//		Email     string `json:"email" form:"email"`
//	}
//
//	r.Put("/customers/{id}", handler.Wrap(update,
//		handler.WithBinders[handler.Context, UpdateCustomerRequest](
//			binder.Path(chi.URLParam),
//			binder.Body(),
//		),
//	))
//
// # Error Handling
//
// Binding failures wrap one of the package sentinels so callers can map them
// to HTTP status codes with errors.Is:
//
//	switch {
//	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
//		// 415
//	case errors.Is(err, binder.ErrRequestTooLarge):
//		// 413
//	default:
//		// 400
//	}
package binder
