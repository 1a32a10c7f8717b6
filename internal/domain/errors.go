// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/CLI output by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")

	// ErrFetch indicates the remote source could not be reached or answered with a failure.
	ErrFetch = errors.New("fetch failed")

	// ErrParse indicates the remote source answered with a payload that could not be decoded.
	ErrParse = errors.New("parse failed")

	// ErrImport indicates an import document was rejected as a whole.
	ErrImport = errors.New("import failed")

	// ErrCorrupt indicates persisted data could not be read back intact.
	ErrCorrupt = errors.New("corrupt stored data")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// FetchError reports a transport-level or status-level failure talking to the
// remote source. Callers degrade to an empty batch.
type FetchError struct {
	Source string
	Cause  error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch from %s failed: %v", e.Source, e.Cause)
	}

	return fmt.Sprintf("fetch from %s failed", e.Source)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *FetchError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrFetch}
	}

	return []error{ErrFetch, e.Cause}
}

// NewFetchError creates a fetch error wrapping cause.
func NewFetchError(source string, cause error) error {
	return &FetchError{Source: source, Cause: cause}
}

// ParseError reports a remote payload that did not have the expected shape.
type ParseError struct {
	Source string
	Cause  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse response from %s: %v", e.Source, e.Cause)
	}

	return "parse response from " + e.Source
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Cause}
}

// NewParseError creates a parse error wrapping cause.
func NewParseError(source string, cause error) error {
	return &ParseError{Source: source, Cause: cause}
}

// ImportParseError reports a rejected import document. Index is the position of
// the offending record, or -1 when the document itself is malformed.
type ImportParseError struct {
	Index int
	Cause error
}

// Error implements the error interface.
func (e *ImportParseError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("import rejected at record %d: %v", e.Index, e.Cause)
	}

	return fmt.Sprintf("import rejected: %v", e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *ImportParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrImport}
	}

	return []error{ErrImport, e.Cause}
}

// NewImportParseError creates an import error for the document as a whole.
func NewImportParseError(cause error) error {
	return &ImportParseError{Index: -1, Cause: cause}
}

// NewImportRecordError creates an import error pointing at one record.
func NewImportRecordError(index int, cause error) error {
	return &ImportParseError{Index: index, Cause: cause}
}

// CorruptDataError reports a persisted value that was partly or wholly
// unreadable. Dropped counts the records discarded from an otherwise valid
// blob; it is -1 when the blob itself could not be decoded.
type CorruptDataError struct {
	Key     string
	Dropped int
	Cause   error
}

// Error implements the error interface.
func (e *CorruptDataError) Error() string {
	if e.Dropped < 0 {
		return fmt.Sprintf("stored %s unreadable: %v", e.Key, e.Cause)
	}

	return fmt.Sprintf("stored %s: dropped %d invalid records: %v", e.Key, e.Dropped, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *CorruptDataError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrCorrupt}
	}

	return []error{ErrCorrupt, e.Cause}
}

// NewCorruptDataError creates an error for an undecodable blob.
func NewCorruptDataError(key string, cause error) error {
	return &CorruptDataError{Key: key, Dropped: -1, Cause: cause}
}

// NewDroppedRecordsError creates an error for a blob that lost n records.
// cause is the first record failure.
func NewDroppedRecordsError(key string, n int, cause error) error {
	return &CorruptDataError{Key: key, Dropped: n, Cause: cause}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsFetch checks if an error is a fetch error.
func IsFetch(err error) bool {
	return errors.Is(err, ErrFetch)
}

// IsParse checks if an error is a parse error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsImport checks if an error is an import error.
func IsImport(err error) bool {
	return errors.Is(err, ErrImport)
}

// IsCorrupt checks if an error reports unreadable persisted data.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorrupt)
}

// IsRemote reports whether err is one of the degradable remote failures.
func IsRemote(err error) bool {
	return IsFetch(err) || IsParse(err) || IsUnavailable(err)
}
