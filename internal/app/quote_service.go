// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/ports"
)

// QuoteService orchestrates the user-facing quote use cases.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	store           *QuoteStore
	storage         ports.QuoteStorage
	remote          ports.RemoteQuotes
	session         ports.SessionStore
	notifier        ports.Notifier
	executor        *Executor
	submitOnAdd     bool
	pushConcurrency int
	remoteTimeout   time.Duration
	logger          *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store    *QuoteStore
	Storage  ports.QuoteStorage
	Remote   ports.RemoteQuotes
	Session  ports.SessionStore
	Notifier ports.Notifier
	Logger   *slog.Logger

	// SubmitOnAdd sends new quotes to the remote source before storing them.
	SubmitOnAdd bool

	// PushConcurrency bounds in-flight submits during PushLocal.
	PushConcurrency int

	// RemoteTimeout bounds each remote submit.
	RemoteTimeout time.Duration
}

// PushReport summarizes a PushLocal run.
type PushReport struct {
	Pending   int `json:"pending"`
	Submitted int `json:"submitted"`
	Failed    int `json:"failed"`
}

type addQuoteInput struct {
	Text     string
	Category string
}

// NewQuoteService creates a new quote service with the provided dependencies.
// It panics if Store, Storage or Session is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil || cfg.Storage == nil || cfg.Session == nil {
		panic("quote service requires store, storage and session")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	concurrency := cfg.PushConcurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	timeout := cfg.RemoteTimeout
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}

	return &QuoteService{
		store:           cfg.Store,
		storage:         cfg.Storage,
		remote:          cfg.Remote,
		session:         cfg.Session,
		notifier:        cfg.Notifier,
		executor:        NewExecutor(logger),
		submitOnAdd:     cfg.SubmitOnAdd,
		pushConcurrency: concurrency,
		remoteTimeout:   timeout,
		logger:          logger.With(slog.String("component", "quote_service")),
	}
}

// ShowRandom picks a random quote and records it as the last viewed one.
// Returns domain.ErrNotFound when the list is empty.
func (s *QuoteService) ShowRandom(ctx context.Context) (domain.Quote, error) {
	q, ok := s.store.PickRandom()
	if !ok {
		s.notify(ctx, ports.LevelInfo, MsgNoQuotes)
		return domain.Quote{}, domain.NewNotFoundError("quote", "")
	}

	if err := s.session.SetLastViewed(ctx, q); err != nil {
		s.logger.WarnContext(ctx, "remembering last viewed quote failed", slog.Any("error", err))
	}

	return q, nil
}

// LastViewed returns the quote most recently shown in this session.
func (s *QuoteService) LastViewed(ctx context.Context) (domain.Quote, error) {
	return s.session.LastViewed(ctx)
}

// AddQuote validates, optionally submits, and stores a new quote.
// A failed submit keeps the quote local-only instead of failing the add.
func (s *QuoteService) AddQuote(ctx context.Context, text, category string) (domain.Quote, error) {
	op := Operation[addQuoteInput, domain.Quote, domain.Quote, domain.Quote]{
		Name: "add_quote",
		Validate: func(_ context.Context, in addQuoteInput) error {
			_, err := domain.NewQuote(in.Text, in.Category)
			return err
		},
		Perform: func(ctx context.Context, in addQuoteInput) (domain.Quote, error) {
			q, err := domain.NewQuote(in.Text, in.Category)
			if err != nil {
				return domain.Quote{}, err
			}

			if !s.submitOnAdd || s.remote == nil {
				return q, nil
			}

			return s.submit(ctx, q), nil
		},
		Verify: func(_ context.Context, _ addQuoteInput, q domain.Quote) (domain.Quote, error) {
			return q, q.Validate()
		},
		Archive: func(ctx context.Context, _ addQuoteInput, q domain.Quote) error {
			_, err := s.store.Append(ctx, q)
			return err
		},
		Respond: func(_ context.Context, _ addQuoteInput, q domain.Quote) (domain.Quote, error) {
			return q, nil
		},
	}

	q, err := Execute(ctx, s.executor, op, addQuoteInput{Text: text, Category: category})
	if err != nil {
		if domain.IsValidation(err) {
			s.notify(ctx, ports.LevelError, MsgMissingFields)
		}

		return domain.Quote{}, err
	}

	s.notify(ctx, ports.LevelSuccess, MsgQuoteAdded)

	return q, nil
}

// ListByCategory returns the quotes for category, or all for the sentinel.
func (s *QuoteService) ListByCategory(_ context.Context, category string) domain.QuoteList {
	return s.store.ListByCategory(category)
}

// Categories returns the derived category set.
func (s *QuoteService) Categories(_ context.Context) []string {
	return s.store.Categories()
}

// SelectCategory persists the selected category. Unknown categories are rejected.
func (s *QuoteService) SelectCategory(ctx context.Context, category string) error {
	if !slices.Contains(s.store.Categories(), category) {
		return domain.NewValidationErrorWithValue("category", "unknown category", category)
	}

	if err := s.storage.SaveCategory(ctx, category); err != nil {
		return fmt.Errorf("saving selected category: %w", err)
	}

	s.logger.DebugContext(ctx, "category selected", slog.String("category", category))

	return nil
}

// SelectedCategory returns the persisted category, falling back to the
// sentinel when none is stored or the stored one no longer exists.
func (s *QuoteService) SelectedCategory(ctx context.Context) string {
	category, err := s.storage.LoadCategory(ctx)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WarnContext(ctx, "loading selected category failed", slog.Any("error", err))
		}

		return domain.AllCategories
	}

	if !slices.Contains(s.store.Categories(), category) {
		return domain.AllCategories
	}

	return category
}

// FilteredQuotes returns the selected category and its quotes.
func (s *QuoteService) FilteredQuotes(ctx context.Context) (string, domain.QuoteList) {
	selected := s.SelectedCategory(ctx)
	return selected, s.store.ListByCategory(selected)
}

// Export writes the full list as indented JSON.
func (s *QuoteService) Export(_ context.Context, w io.Writer) error {
	return s.store.Export(w)
}

// Import appends every quote of a JSON document, or nothing if any record is invalid.
func (s *QuoteService) Import(ctx context.Context, r io.Reader) (int, error) {
	n, err := s.store.Import(ctx, r)
	if err != nil {
		if domain.IsImport(err) {
			s.notify(ctx, ports.LevelError, MsgImportRejected)
		}

		s.logger.WarnContext(ctx, "import failed", slog.Any("error", err))

		return 0, err
	}

	s.logger.InfoContext(ctx, "quotes imported", slog.Int("count", n))
	s.notify(ctx, ports.LevelSuccess, MsgImported)

	return n, nil
}

// PushLocal submits every local-only quote and records the assigned IDs.
// Quotes whose submit fails stay local-only.
func (s *QuoteService) PushLocal(ctx context.Context) (PushReport, error) {
	pending := s.store.LocalOnly()
	report := PushReport{Pending: len(pending)}

	if len(pending) == 0 || s.remote == nil {
		return report, nil
	}

	results := MapPartial(ctx, s.pushConcurrency, pending,
		func(ctx context.Context, iq IndexedQuote) (domain.Quote, error) {
			submitCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
			defer cancel()

			return s.remote.SubmitQuote(submitCtx, iq.Quote)
		})

	assignments := make([]IDAssignment, 0, len(results))

	for i, r := range results {
		if r.Err != nil || !r.Value.HasID() {
			report.Failed++
			continue
		}

		assignments = append(assignments, IDAssignment{
			Index:    pending[i].Index,
			Original: pending[i].Quote,
			ID:       *r.Value.ID,
		})
	}

	applied, err := s.store.AssignIDs(ctx, assignments)
	if err != nil {
		return report, err
	}

	report.Submitted = applied
	report.Failed += len(assignments) - applied

	s.logger.InfoContext(ctx, "local quotes pushed",
		slog.Int("submitted", report.Submitted),
		slog.Int("failed", report.Failed),
	)

	if report.Submitted > 0 {
		s.notify(ctx, ports.LevelSuccess, MsgPushed)
	}

	return report, nil
}

// submit sends q to the remote source, returning q unchanged on failure.
func (s *QuoteService) submit(ctx context.Context, q domain.Quote) domain.Quote {
	submitCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	defer cancel()

	submitted, err := s.remote.SubmitQuote(submitCtx, q)
	if err != nil {
		s.logger.WarnContext(ctx, "submit failed, keeping quote local", slog.Any("error", err))
		return q
	}

	return submitted
}

func (s *QuoteService) notify(ctx context.Context, level ports.Level, msg string) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, ports.Notification{Level: level, Message: msg})
	}
}
