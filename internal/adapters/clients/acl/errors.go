package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quotegen/internal/adapters/clients"
	"github.com/jsamuelsen/quotegen/internal/domain"
)

// ErrorResponse represents an error body from the remote source.
// It supports both nested format (error.message) and flat format (message).
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail contains error information from the remote source.
type ErrorDetail struct {
	Message string `json:"message"`
}

// GetMessage returns the error message from either nested or top-level format.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// ParseErrorResponse attempts to parse an error response body.
// Returns nil if the body is empty or cannot be parsed.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed exchange with the remote source to a domain error.
//
//   - circuit breaker open → [domain.UnavailableError]
//   - transport failure or 5xx → [domain.FetchError]
//   - any other non-2xx status → [domain.FetchError] carrying the status
//
// A 2xx response maps to nil.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	message := fmt.Sprintf("%s failed with status %d", operation, resp.StatusCode)

	if resp.Body != nil {
		if errResp := ParseErrorResponse(resp.Body); errResp != nil {
			message = fmt.Sprintf("%s (status %d)", errResp.GetMessage(), resp.StatusCode)
		}
	}

	return domain.NewFetchError(serviceName, errors.New(message))
}

// mapClientError translates client-level errors to domain errors.
func mapClientError(err error, serviceName, operation string) error {
	if errors.Is(err, clients.ErrCircuitOpen) {
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))
	}

	return domain.NewFetchError(serviceName, fmt.Errorf("%s: %w", operation, err))
}
