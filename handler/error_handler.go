package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/customerdesk/pkg/binder"
	"github.com/dmitrymomot/customerdesk/pkg/logger"
	"github.com/dmitrymomot/customerdesk/pkg/requestid"
)

// classifyError maps err to a ValidationError or an HTTPError.
// Binding failures map to 4xx codes; anything unknown becomes a 500.
func classifyError(err error) error {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		return valErr
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, binder.ErrRequestTooLarge):
		return ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToParsePath):
		return ErrBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return ErrGatewayTimeout
	default:
		return ErrInternalServerError
	}
}

func logLevelFor(code int) slog.Level {
	if code < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler creates the JSON error handler shared by all routes.
// Client and server errors are logged with the request id; validation
// errors are returned to the client without being logged.
// The request id is echoed in the response meta.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		requestID := requestid.FromContext(r.Context())
		classified := classifyError(err)

		var opts []JSONOption
		if requestID != "" {
			opts = append(opts, WithJSONMeta(map[string]any{"request_id": requestID}))
		}

		var httpErr HTTPError
		if errors.As(classified, &httpErr) {
			log.LogAttrs(r.Context(), logLevelFor(httpErr.Code), "request error",
				logger.RequestID(requestID),
				logger.Error(err),
				logger.StatusCode(httpErr.Code),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Component("error_handler"),
			)
		}

		if renderErr := JSONError(classified, opts...).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.RequestID(requestID),
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
