package binder

import (
	"fmt"
	"net/http"
)

// Path creates a path parameter binder using extractor to read a named
// parameter from the request, for example chi.URLParam.
//
//	type CustomerRequest struct {
//		ID int `path:"id"`
//	}
//
//	r.Get("/customers/{id}", handler.Wrap(get,
//		handler.WithBinder[handler.Context, CustomerRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: no path parameter extractor configured", ErrFailedToParsePath)
		}
		return bindFields(v, "path", func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrFailedToParsePath)
	}
}
