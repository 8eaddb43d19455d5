// Package handler provides type-safe HTTP request handling.
//
// Handlers are generic functions that receive a bound request value and
// return a Response. Wrap adapts them to http.HandlerFunc:
//
//	func create(ctx handler.Context, req customer.FormFields) handler.Response {
//		c, err := svc.Create(ctx, req)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(c, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/customers", handler.Wrap(create,
//		handler.WithBinder[handler.Context, customer.FormFields](binder.Body()),
//		handler.WithErrorHandler[handler.Context, customer.FormFields](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
//	handler.JSON(data)                          // 200 OK with {"data": ...}
//	handler.JSON(data, handler.WithJSONStatus(201))
//	handler.JSONError(err)                      // {"error": {...}} with mapped status
//	handler.Empty()                             // 204 No Content
//
// # Errors
//
// JSONError and the error handler map errors to status codes:
//
//   - ValidationError renders 422 with per-field details
//   - HTTPError renders its Code with Key as the error code
//   - binder errors render 400, 413 or 415
//   - anything else renders 500 without exposing the error text
//
// NewErrorHandler additionally logs non-validation errors through the given
// slog.Logger with the request id attached.
package handler
