// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrFetch, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotegen/internal/domain"
)

// RemoteQuotes is the contract for the external quote source.
//
// Both methods always hand back a usable value. The error is informational:
// callers keep operating on local state and surface the degradation.
type RemoteQuotes interface {
	// FetchRemoteQuotes retrieves at most the configured batch of quotes.
	// On any transport or parse failure it returns an empty list together with
	// a domain.FetchError, domain.ParseError or domain.UnavailableError.
	FetchRemoteQuotes(ctx context.Context) (domain.QuoteList, error)

	// SubmitQuote sends a local quote to the remote source. On success the
	// returned copy carries the server-assigned ID. On failure the input is
	// returned unchanged (still id-less) together with the cause.
	SubmitQuote(ctx context.Context, q domain.Quote) (domain.Quote, error)
}

// QuoteStorage persists the quote list and the last selected category.
// Saves are full-replace snapshots.
type QuoteStorage interface {
	// LoadQuotes returns the persisted list.
	// Returns domain.ErrNotFound when nothing has been persisted yet. A blob
	// with unreadable parts yields the readable records together with a
	// domain.CorruptDataError.
	LoadQuotes(ctx context.Context) (domain.QuoteList, error)

	// SaveQuotes replaces the persisted list.
	SaveQuotes(ctx context.Context, quotes domain.QuoteList) error

	// LoadCategory returns the last selected category name.
	// Returns domain.ErrNotFound when none was saved.
	LoadCategory(ctx context.Context) (string, error)

	// SaveCategory replaces the last selected category name.
	SaveCategory(ctx context.Context, category string) error

	// Close releases the underlying connection.
	Close() error
}

// SessionStore holds session-scoped state that must not outlive the session.
type SessionStore interface {
	// LastViewed returns the last quote shown in this session.
	// Returns domain.ErrNotFound when nothing was shown yet or the session expired.
	LastViewed(ctx context.Context) (domain.Quote, error)

	// SetLastViewed records the quote most recently shown.
	SetLastViewed(ctx context.Context, q domain.Quote) error

	// Clear ends the session.
	Clear(ctx context.Context)
}

// Level classifies a notification.
type Level string

const (
	// LevelInfo is a neutral notification.
	LevelInfo Level = "info"

	// LevelSuccess reports a completed user action.
	LevelSuccess Level = "success"

	// LevelWarning reports a degraded outcome.
	LevelWarning Level = "warning"

	// LevelError reports a rejected user action.
	LevelError Level = "error"
)

// Notification is a short user-facing message.
type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier is a fire-and-forget sink for user-facing messages.
// Implementations must not block the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
