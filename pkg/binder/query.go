package binder

import "net/http"

// Query creates a query parameter binder function.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//
// Multi-value parameters bind to slices, either repeated (?s=a&s=b) or
// comma separated (?s=a,b).
//
// Example:
//
//	type ListRequest struct {
//		Page     int    `query:"page"`
//		Search   string `query:"search"`
//		IsActive *bool  `query:"is_active"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
