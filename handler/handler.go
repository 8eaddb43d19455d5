package handler

import (
	"net/http"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
// Example:
//
//	create := handler.HandlerFunc[handler.Context, customer.FormFields](
//		func(ctx handler.Context, req customer.FormFields) handler.Response {
//			c, err := svc.Create(ctx, req)
//			if err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.JSON(c, handler.WithJSONStatus(http.StatusCreated))
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Render errors are passed to the configured ErrorHandler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in the list is the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinder sets a single request binder, replacing any configured before it.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders that are applied in order.
// Each binder should process only its own struct tags.
//
// Example:
//
//	r.Put("/customers/{id}", handler.Wrap(update,
//		handler.WithBinders[handler.Context, UpdateRequest](
//			binder.Path(chi.URLParam),
//			binder.Body(),
//		),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler renders errors as JSON error bodies without logging.
func defaultErrorHandler[C Context](ctx C, err error) {
	_ = JSONError(classifyError(err)).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Usage with standard context:
//
//	r.Post("/customers", handler.Wrap(create,
//		handler.WithBinder[handler.Context, customer.FormFields](binder.Body()),
//		handler.WithErrorHandler[handler.Context, customer.FormFields](errorHandler),
//	))
//
// Custom context types require WithContextFactory.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := NewContext(w, r).(C); ok {
				return c
			}
			panic("handler: cannot use default context factory with custom context type, provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
