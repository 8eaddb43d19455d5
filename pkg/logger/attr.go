package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/customerdesk/pkg/sanitizer"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// Each error is rendered by sanitizer.ErrorForLog.
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.String(strconv.Itoa(i), sanitizer.ErrorForLog(err)))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error" as {"name":...,"message":...}.
// The stack and wrapped values are never logged.
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", sanitizer.ErrorForLog(err))
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// CustomerID records the customer identifier under the key "customer_id".
// If id is nil, it returns an empty Attr.
func CustomerID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("customer_id", id)
}

// Operation records the operation name under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// RetryCount records the retry count under the key "retry_count".
func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}

// StatusCode records an HTTP status under the key "status".
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
