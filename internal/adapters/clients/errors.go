// Package clients provides HTTP client adapters for downstream services.
package clients

import (
	"errors"
	"fmt"
)

// Client errors represent failures in the HTTP client layer.
// These are distinct from domain errors - they represent infrastructure failures
// that should be translated to domain errors by the calling code.
var (
	// ErrCircuitOpen is returned when the circuit breaker is open.
	// This indicates the downstream service is unhealthy and requests are being blocked.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed is returned when the request never produced a response.
	// The transport error is wrapped for context.
	ErrRequestFailed = errors.New("request failed")

	// ErrServerError is matched by every *StatusError.
	ErrServerError = errors.New("server error")
)

// StatusError reports a 5xx response from the downstream service.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error: %d", e.StatusCode)
}

// Is reports whether target is ErrServerError.
func (e *StatusError) Is(target error) bool {
	return target == ErrServerError
}
