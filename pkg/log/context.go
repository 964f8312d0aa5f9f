package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	fieldsKey
)

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "" if unset or ctx is nil.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithFields returns a context carrying the given key/value pairs merged
// over any fields already present. Later keys win.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	merged := logrus.Fields{}
	for k, v := range FieldsFromContext(ctx) {
		merged[k] = v
	}
	for k, v := range pairs(keysAndValues) {
		merged[k] = v
	}
	return context.WithValue(ctx, fieldsKey, merged)
}

// FieldsFromContext returns the fields stored by WithFields, or nil.
func FieldsFromContext(ctx context.Context) logrus.Fields {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey).(logrus.Fields)
	return fields
}

// pairs turns alternating keys and values into fields.
// Non-string keys and a trailing odd key are skipped.
func pairs(keysAndValues []any) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		if err, isErr := keysAndValues[i+1].(error); isErr {
			fields[key] = err.Error()
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
