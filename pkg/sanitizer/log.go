package sanitizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

const (
	// MaxLogLength is the maximum number of characters ForLog returns.
	MaxLogLength = 1000

	// TimestampFormat is the ISO-8601 layout used by structured log entries.
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

	nullPlaceholder           = "null"
	unserializablePlaceholder = "[Object object]"
	unknownErrorPlaceholder   = "Unknown error"
)

// normalizeLogLine removes everything that could split a log record or drive
// a terminal. ANSI sequences are stripped before the remaining control
// characters so no "[31m" residue survives, and line breaks become spaces
// so the words on either side stay separated.
var normalizeLogLine = Compose(
	DropInvalidUTF8,
	StripANSI,
	SingleLine,
	RemoveControlChars,
	CollapseWhitespace,
	func(s string) string { return MaxLength(s, MaxLogLength) },
)

// ForLog converts v into a single line that is safe to write to a log sink.
//
// nil values become "null". Maps, slices, arrays, structs and pointers are
// JSON encoded; values that cannot be encoded (cycles, channels, functions)
// become "[Object object]". Errors use Error(), fmt.Stringer values use String()
// and other scalars are formatted with fmt. The result never contains control
// characters, ANSI escape sequences or line breaks and is at most MaxLogLength
// characters long.
//
// ForLog is idempotent with one exception: when truncation ends the result
// with a space, a second pass trims that space and returns MaxLogLength-1
// characters.
func ForLog(v any) string {
	return normalizeLogLine(stringify(v))
}

// ErrorForLog renders an error as {"name":...,"message":...} with the message
// sanitized by ForLog. Stack traces and wrapped values are never included.
// A nil argument yields "Unknown error"; non-error values fall back to ForLog.
func ErrorForLog(v any) string {
	if isNil(v) {
		return unknownErrorPlaceholder
	}

	err, ok := v.(error)
	if !ok {
		return ForLog(v)
	}

	return ForLog(struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}{
		Name:    errorName(err),
		Message: ForLog(err.Error()),
	})
}

// LogEntry is a single structured log record.
type LogEntry struct {
	Timestamp string            `json:"timestamp"`
	Level     string            `json:"level"`
	Message   string            `json:"message"`
	Context   map[string]string `json:"context,omitempty"`
}

// NewLogEntry builds a LogEntry stamped with now in UTC. The level, the
// message and every context key and value are passed through ForLog
// independently. Keys that collide after sanitization keep the value of the
// lexically last original key.
func NewLogEntry(now time.Time, level, message string, ctx map[string]any) LogEntry {
	entry := LogEntry{
		Timestamp: now.UTC().Format(TimestampFormat),
		Level:     ForLog(level),
		Message:   ForLog(message),
	}

	if len(ctx) == 0 {
		return entry
	}

	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entry.Context = make(map[string]string, len(ctx))
	for _, k := range keys {
		entry.Context[ForLog(k)] = ForLog(ctx[k])
	}

	return entry
}

// String returns the entry as one line of JSON.
func (e LogEntry) String() string {
	b, err := encodeJSON(e)
	if err != nil {
		// Every field is a plain string so encoding cannot fail.
		return unserializablePlaceholder
	}
	return b
}

// StructuredLog returns a JSON log line for the current time.
func StructuredLog(level, message string, ctx map[string]any) string {
	return NewLogEntry(time.Now(), level, message, ctx).String()
}

func stringify(v any) string {
	if isNil(v) {
		return nullPlaceholder
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		s, err := encodeJSON(v)
		if err != nil {
			return unserializablePlaceholder
		}
		return s
	default:
		return fmt.Sprint(v)
	}
}

// encodeJSON marshals v without HTML escaping and without the trailing newline
// json.Encoder appends.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func errorName(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}
