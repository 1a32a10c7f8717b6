// Package dto provides the request and response shapes of the quote API.
package dto

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/platform/logging"
)

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	Message string `json:"message"`

	// Details holds field-level messages for validation failures.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	ErrorCodeNotFound       = "NOT_FOUND"
	ErrorCodeMethod         = "METHOD_NOT_ALLOWED"
	ErrorCodeValidation     = "VALIDATION_ERROR"
	ErrorCodeBadRequest     = "BAD_REQUEST"
	ErrorCodeImportRejected = "IMPORT_REJECTED"
	ErrorCodeUpstream       = "UPSTREAM_ERROR"
	ErrorCodeUnavailable    = "SERVICE_UNAVAILABLE"
	ErrorCodeTimeout        = "TIMEOUT"
	ErrorCodeInternal       = "INTERNAL_ERROR"
)

// Context key set by middleware that knows the current trace ID.
const traceIDKey = "trace_id"

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with field details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID sets the trace ID and returns e.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeMethod:
		return http.StatusMethodNotAllowed
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeImportRejected:
		return http.StatusUnprocessableEntity
	case ErrorCodeUpstream:
		return http.StatusBadGateway
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps err to an error response. Unknown errors get a generic
// message so internals do not leak.
func MapDomainError(err error) *ErrorResponse {
	switch {
	case domain.IsNotFound(err):
		return NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsImport(err):
		return NewErrorResponse(ErrorCodeImportRejected, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return resp

	case domain.IsUnavailable(err):
		return NewErrorResponse(ErrorCodeUnavailable, "quote source temporarily unavailable")

	case domain.IsRemote(err):
		return NewErrorResponse(ErrorCodeUpstream, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return NewErrorResponse(ErrorCodeTimeout, "request timed out")

	default:
		return NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// HandleError writes the error response for err, tagged with the trace ID.
// Internal errors are logged with their full cause.
func HandleError(c *gin.Context, err error) {
	resp := MapDomainError(err).WithTraceID(GetTraceID(c))
	status := HTTPStatusFromCode(resp.Error.Code)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			"error", err.Error(),
			"trace_id", resp.TraceID,
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// RespondWithCode writes an error response for an adapter-level failure
// that did not come from the domain.
func RespondWithCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code),
		NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 with field-level details.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest,
		NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", fieldErrors).
			WithTraceID(GetTraceID(c)))
}

// GetTraceID returns the OpenTelemetry trace ID of the request when one is
// recording, then a trace ID stored on the context, then X-Request-ID.
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	if v, ok := c.Get(traceIDKey); ok {
		id, _ := v.(string)
		return id
	}

	return c.GetHeader("X-Request-ID")
}
