// Package middleware provides the Gin middleware chain of the quote API.
package middleware

import (
	"context"

	"github.com/jsamuelsen/quotegen/internal/platform/logging"
)

type contextKey string

const (
	ctxKeyRequestID     contextKey = "request_id"
	ctxKeyCorrelationID contextKey = "correlation_id"
)

// RequestIDFromContext returns the request ID stored in ctx, or "".
// The remote quote client forwards it as X-Request-ID.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(ctxKeyRequestID).(string)

	return id
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(ctxKeyCorrelationID).(string)

	return id
}

// ContextWithRequestID stores a request ID in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation ID in ctx.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

// WithRequest tags ctx and its logger with an API request ID.
// An empty id leaves ctx unchanged.
func WithRequest(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}

	return ContextWithRequestID(logging.WithRequestID(ctx, id), id)
}

// WithCorrelation tags ctx and its logger with a correlation ID. The API
// takes it from X-Correlation-ID; CLI commands start one per invocation so
// every remote call and log line of the run shares it.
// An empty id leaves ctx unchanged.
func WithCorrelation(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}

	return ContextWithCorrelationID(logging.WithCorrelationID(ctx, id), id)
}
