package telemetry

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotegen/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/quotegen/telemetry"

	// HeaderTraceID carries the trace ID of the server span back to the caller.
	HeaderTraceID = "X-Trace-ID"

	// ContextKeyTraceID is the gin context key holding the trace ID.
	ContextKeyTraceID = "trace_id"
)

// httpMetrics holds the HTTP server instruments.
type httpMetrics struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inflight metric.Int64UpDownCounter
}

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	duration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requests, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	inflight, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{duration: duration, requests: requests, inflight: inflight}, nil
}

func (m *httpMetrics) begin(ctx context.Context, method, route string) func(status int) {
	start := time.Now()
	base := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.route", route),
	}

	m.inflight.Add(ctx, 1, metric.WithAttributes(base...))

	return func(status int) {
		m.inflight.Add(ctx, -1, metric.WithAttributes(base...))

		attrs := metric.WithAttributes(append(base, attribute.Int("http.status_code", status))...)
		m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
		m.requests.Add(ctx, 1, attrs)
	}
}

// Middleware records HTTP server metrics and exposes the trace ID of the
// current span. It expects TracingMiddleware earlier in the chain; without a
// recording span it only records metrics.
//
// The trace ID is written to the X-Trace-ID response header, stored under
// ContextKeyTraceID for error responses and added to the request logger.
func Middleware(serviceName string) gin.HandlerFunc {
	metrics, err := newHTTPMetrics(otel.Meter(instrumentationName,
		metric.WithInstrumentationAttributes(attribute.String("service.name", serviceName))))
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			id := sc.TraceID().String()

			c.Header(HeaderTraceID, id)
			c.Set(ContextKeyTraceID, id)
			c.Request = c.Request.WithContext(logging.WithTraceID(ctx, id))
		}

		if metrics == nil {
			c.Next()
			return
		}

		done := metrics.begin(ctx, c.Request.Method, c.FullPath())
		c.Next()
		done(c.Writer.Status())
	}
}

// TracingMiddleware starts a server span per request.
func TracingMiddleware(serviceName string, opts ...otelgin.Option) gin.HandlerFunc {
	return otelgin.Middleware(serviceName, opts...)
}
