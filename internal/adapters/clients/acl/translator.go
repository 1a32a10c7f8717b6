package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jsamuelsen/quotegen/internal/adapters/clients"
	"github.com/jsamuelsen/quotegen/internal/domain"
)

// BaseAdapter provides common functionality for ACL adapters.
// Embed this in your service-specific adapters.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a new base adapter with the given client and service name.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName returns the name of the external service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Get performs a GET request and returns the response body (caller must close).
// Failures come back as domain errors.
func (a *BaseAdapter) Get(ctx context.Context, path, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation)
	}

	if mapped := MapHTTPError(resp, nil, a.serviceName, operation); mapped != nil {
		_ = resp.Body.Close()

		return nil, mapped
	}

	return resp.Body, nil
}

// Post performs a POST request and returns the response body (caller must close).
// Failures come back as domain errors.
func (a *BaseAdapter) Post(ctx context.Context, path string, body io.Reader, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Post(ctx, path, body)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation)
	}

	if mapped := MapHTTPError(resp, nil, a.serviceName, operation); mapped != nil {
		_ = resp.Body.Close()

		return nil, mapped
	}

	return resp.Body, nil
}

// DecodeResponse reads and decodes a JSON response body into the target type.
// Closes the body after reading.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// ValidateRequired checks that a required field is not empty.
// Returns a domain.ValidationError if the field is empty.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return domain.NewValidationError(fieldName, "is required")
	}

	return nil
}

// ValidatePositive checks that a numeric value is positive.
// Returns a domain.ValidationError if the value is not positive.
func ValidatePositive[T ~int | ~int64 | ~float64](value T, fieldName string) error {
	if value <= 0 {
		return domain.NewValidationError(fieldName, "must be positive")
	}

	return nil
}

// Translator is a function type that translates an external DTO to a domain type.
// The function should validate the external data and return a domain error
// if validation fails.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// Rejected records an external item a translator refused.
type Rejected struct {
	Index int
	Err   error
}

// TranslateSlice applies a translator to at most limit items (limit <= 0 means
// all). Items the translator rejects are skipped and reported, never fatal.
func TranslateSlice[E any, D any](items []E, limit int, translate Translator[E, D]) ([]D, []Rejected) {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	result := make([]D, 0, len(items))

	var rejected []Rejected

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			rejected = append(rejected, Rejected{Index: i, Err: err})

			continue
		}

		result = append(result, translated)
	}

	return result, rejected
}
