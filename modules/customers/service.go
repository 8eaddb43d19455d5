package customers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/customerdesk/handler"
	"github.com/dmitrymomot/customerdesk/pkg/binder"
	"github.com/dmitrymomot/customerdesk/pkg/customer"
	"github.com/dmitrymomot/customerdesk/pkg/ratelimiter"
)

// Service exposes the customer endpoints.
type Service struct {
	customers    *customer.Service
	errorHandler handler.ErrorHandler[handler.Context]
	throttle     func(http.Handler) http.Handler
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithSubmitLimiter throttles form submissions (create, update and field
// validation) per client IP. Throttled requests get a 429 JSON error.
func WithSubmitLimiter(limiter ratelimiter.RateLimiter) ServiceOption {
	return func(s *Service) {
		if limiter == nil {
			return
		}
		s.throttle = ratelimiter.Middleware(limiter, ratelimiter.ByClientIP("submit"),
			ratelimiter.WithDeniedHandler(http.HandlerFunc(s.tooManyRequests)),
			ratelimiter.WithErrorHandler(s.limiterFailed),
		)
	}
}

// NewService creates the customer HTTP service. A nil errorHandler falls
// back to handler.NewErrorHandler with the default logger.
func NewService(customers *customer.Service, errorHandler handler.ErrorHandler[handler.Context], opts ...ServiceOption) *Service {
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(nil)
	}
	s := &Service{
		customers:    customers,
		errorHandler: errorHandler,
		throttle:     func(next http.Handler) http.Handler { return next },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the customer routes, relative to the mount point.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.list,
		handler.WithBinder[handler.Context, customer.ListParams](binder.Query()),
		handler.WithErrorHandler[handler.Context, customer.ListParams](s.errorHandler),
	))
	r.With(s.throttle).Post("/", handler.Wrap(s.create,
		handler.WithBinder[handler.Context, customer.FormFields](binder.Body()),
		handler.WithErrorHandler[handler.Context, customer.FormFields](s.errorHandler),
	))
	r.Get("/stats", handler.Wrap(s.stats,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.With(s.throttle).Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, ValidateRequest](binder.Query(), binder.Body()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
	))

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", s.withID(s.get))
		r.Delete("/", s.withID(s.delete))
		r.Post("/activate", s.withID(s.activate))
		r.Post("/deactivate", s.withID(s.deactivate))
		r.With(s.throttle).Put("/", handler.Wrap(s.update,
			handler.WithBinders[handler.Context, UpdateRequest](binder.Body(), binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, UpdateRequest](s.errorHandler),
		))
	})

	return r
}

// IDRequest identifies a customer by path parameter.
type IDRequest struct {
	ID int64 `path:"id"`
}

// UpdateRequest carries the path id and the submitted form.
type UpdateRequest struct {
	ID int64 `path:"id" json:"-" form:"-"`
	customer.FormFields
}

// ValidateRequest validates the whole form, or only Field when it is set.
type ValidateRequest struct {
	Field string `query:"field" json:"-" form:"-"`
	customer.FormFields
}

func (s *Service) withID(h handler.HandlerFunc[handler.Context, IDRequest]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinder[handler.Context, IDRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, IDRequest](s.errorHandler),
	)
}

func (s *Service) list(ctx handler.Context, req customer.ListParams) handler.Response {
	page, err := s.customers.List(ctx, req)
	if err != nil {
		return handler.JSONError(upstreamError(err))
	}
	return handler.JSON(page)
}

func (s *Service) stats(ctx handler.Context, _ struct{}) handler.Response {
	stats, err := s.customers.Stats(ctx)
	if err != nil {
		return handler.JSONError(upstreamError(err))
	}
	return handler.JSON(stats)
}

func (s *Service) get(ctx handler.Context, req IDRequest) handler.Response {
	c, err := s.customers.Get(ctx, req.ID)
	if err != nil {
		return handler.JSONError(upstreamError(err))
	}
	return handler.JSON(c)
}

func (s *Service) create(ctx handler.Context, req customer.FormFields) handler.Response {
	c, err := s.customers.Create(ctx, req)
	if err != nil {
		return formError(err)
	}
	return handler.JSON(c, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) update(ctx handler.Context, req UpdateRequest) handler.Response {
	c, err := s.customers.Update(ctx, req.ID, req.FormFields)
	if err != nil {
		return formError(err)
	}
	return handler.JSON(c)
}

func (s *Service) delete(ctx handler.Context, req IDRequest) handler.Response {
	if err := s.customers.Delete(ctx, req.ID); err != nil {
		return handler.JSONError(upstreamError(err))
	}
	return handler.Empty()
}

func (s *Service) activate(ctx handler.Context, req IDRequest) handler.Response {
	c, err := s.customers.Activate(ctx, req.ID)
	if err != nil {
		return handler.JSONError(upstreamError(err))
	}
	return handler.JSON(c)
}

func (s *Service) deactivate(ctx handler.Context, req IDRequest) handler.Response {
	c, err := s.customers.Deactivate(ctx, req.ID)
	if err != nil {
		return handler.JSONError(upstreamError(err))
	}
	return handler.JSON(c)
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	if req.Field == "" {
		if err := s.customers.Validator().Validate(req.FormFields); err != nil {
			return formError(err)
		}
		return handler.JSON(map[string]bool{"valid": true})
	}

	value, err := req.FormFields.Get(req.Field)
	if err != nil {
		return handler.JSONError(handler.ErrBadRequest)
	}
	msg, err := s.customers.Validator().ValidateField(req.Field, value)
	if err != nil {
		return handler.JSONError(handler.ErrBadRequest)
	}
	if msg != "" {
		return formError(customer.FieldErrors{req.Field: msg})
	}
	return handler.JSON(map[string]bool{"valid": true})
}

// formError renders validation failures as 422 with accessibility hints and
// submission failures as 502 with the encoded general message. A missing
// customer is still a 404.
func formError(err error) handler.Response {
	var fe customer.FieldErrors
	if errors.As(err, &fe) {
		return handler.JSONError(toValidationError(fe), handler.WithJSONMeta(map[string]any{"aria": ariaState(fe)}))
	}

	if errors.Is(err, customer.ErrNotFound) {
		return handler.JSONError(handler.ErrNotFound)
	}

	var subErr *customer.SubmissionError
	if errors.As(err, &subErr) {
		general := subErr.Errors.Get(customer.FieldGeneral)
		return handler.JSONError(&handler.ErrorDetail{
			Code:    "submission_failed",
			Message: general,
			Details: map[string][]string{customer.FieldGeneral: {general}},
		}, handler.WithJSONStatus(http.StatusBadGateway))
	}

	return handler.JSONError(upstreamError(err))
}

// upstreamError maps Customer API failures to HTTP errors.
func upstreamError(err error) error {
	switch {
	case errors.Is(err, customer.ErrNotFound):
		return handler.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return handler.ErrGatewayTimeout
	default:
		return handler.ErrBadGateway
	}
}

func toValidationError(fe customer.FieldErrors) handler.ValidationError {
	ve := handler.NewValidationError()
	for field, msg := range fe {
		ve.Add(field, msg)
	}
	return ve
}

// ariaState reports aria-invalid for every input field and points invalid
// fields at their error element.
func ariaState(fe customer.FieldErrors) map[string]map[string]string {
	state := make(map[string]map[string]string, len(customer.Fields))
	for _, field := range customer.Fields {
		attrs := map[string]string{"aria-invalid": "false"}
		if fe.Has(field) {
			attrs["aria-invalid"] = "true"
			attrs["aria-describedby"] = field + "-error"
		}
		state[field] = attrs
	}
	return state
}

func (s *Service) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

func (s *Service) limiterFailed(w http.ResponseWriter, r *http.Request, err error) {
	s.errorHandler(handler.NewContext(w, r), err)
}
