package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Attribute keys of the IDs that tie log lines of one operation together.
const (
	KeyRequestID     = "request_id"
	KeyTraceID       = "trace_id"
	KeyCorrelationID = "correlation_id"
)

type ctxKey struct{}

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(slog.Default())
}

// FromContext returns the logger stored in ctx, or the default logger when
// there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := Lookup(ctx); ok {
		return logger
	}

	return defaultLogger.Load()
}

// Lookup returns the logger stored in ctx, if any.
func Lookup(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}

	logger, ok := ctx.Value(ctxKey{}).(*slog.Logger)

	return logger, ok && logger != nil
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// With stores the context logger extended with args.
func With(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}

	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithRequestID tags the context logger with the API request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return withID(ctx, KeyRequestID, id)
}

// WithTraceID tags the context logger with the OpenTelemetry trace ID.
func WithTraceID(ctx context.Context, id string) context.Context {
	return withID(ctx, KeyTraceID, id)
}

// WithCorrelationID tags the context logger with the ID shared by every call
// of one CLI invocation or one caller transaction.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return withID(ctx, KeyCorrelationID, id)
}

// withID leaves ctx unchanged for an empty id.
func withID(ctx context.Context, key, id string) context.Context {
	if id == "" {
		return ctx
	}

	return With(ctx, slog.String(key, id))
}

// SetDefault sets the logger used when no logger is in context and installs
// it as the slog default.
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
	slog.SetDefault(logger)
}
