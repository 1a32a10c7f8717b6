package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/ports"
)

// QuoteStore owns the in-memory quote list and keeps it persisted.
//
// Every mutation writes the full list through the storage port before it
// becomes visible. A failed write leaves the in-memory list untouched.
type QuoteStore struct {
	mu      sync.RWMutex
	storage ports.QuoteStorage
	quotes  domain.QuoteList
	loaded  bool
	intn    func(n int) int
	logger  *slog.Logger
}

// QuoteStoreConfig holds dependencies for QuoteStore.
type QuoteStoreConfig struct {
	Storage ports.QuoteStorage
	Logger  *slog.Logger

	// Intn picks an index in [0, n). Defaults to math/rand/v2.IntN.
	Intn func(n int) int
}

// IndexedQuote pairs a quote with its position in the list.
type IndexedQuote struct {
	Index int
	Quote domain.Quote
}

// IDAssignment attaches a server-assigned ID to the id-less quote at Index.
type IDAssignment struct {
	Index    int
	Original domain.Quote
	ID       int
}

// NewQuoteStore creates a quote store. It panics if Storage is nil.
func NewQuoteStore(cfg QuoteStoreConfig) *QuoteStore {
	if cfg.Storage == nil {
		panic("quote store requires storage")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	intn := cfg.Intn
	if intn == nil {
		intn = rand.IntN
	}

	return &QuoteStore{
		storage: cfg.Storage,
		intn:    intn,
		logger:  logger.With(slog.String("component", "quote_store")),
	}
}

// Initialize loads the persisted list, or seeds and persists the default list
// when storage has none. Later calls return the already loaded list.
//
// Corrupt stored data is not fatal: the readable records are kept, or the seed
// list when none are, and the repaired list is written back. Other storage
// failures are returned and the store stays unloaded so a later call can
// retry.
func (s *QuoteStore) Initialize(ctx context.Context) (domain.QuoteList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}

	return s.quotes.Clone(), nil
}

// loadLocked performs the first load. Callers hold the write lock.
func (s *QuoteStore) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	quotes, err := s.storage.LoadQuotes(ctx)

	switch {
	case err == nil:
		s.logger.DebugContext(ctx, "loaded persisted quotes", slog.Int("count", len(quotes)))
	case domain.IsNotFound(err):
		quotes = domain.SeedQuotes()

		if err := s.storage.SaveQuotes(ctx, quotes); err != nil {
			return fmt.Errorf("persisting seed quotes: %w", err)
		}

		s.logger.InfoContext(ctx, "seeded default quotes", slog.Int("count", len(quotes)))
	case domain.IsCorrupt(err):
		quotes = s.recoverCorrupt(ctx, quotes, err)
	default:
		return fmt.Errorf("loading quotes: %w", err)
	}

	s.quotes = quotes.Clone()
	s.loaded = true

	return nil
}

// recoverCorrupt keeps the readable part of a corrupt blob, falling back to the seed
// list, and rewrites storage. A failed rewrite only means the next mutation
// repairs it.
func (s *QuoteStore) recoverCorrupt(ctx context.Context, readable domain.QuoteList, cause error) domain.QuoteList {
	quotes := readable
	if len(quotes) == 0 {
		quotes = domain.SeedQuotes()
	}

	s.logger.WarnContext(ctx, "stored quotes were corrupt, continuing with recovered list",
		slog.Any("error", cause),
		slog.Int("recovered", len(readable)),
		slog.Int("count", len(quotes)),
	)

	if err := s.storage.SaveQuotes(ctx, quotes); err != nil {
		s.logger.WarnContext(ctx, "rewriting recovered quotes failed", slog.Any("error", err))
	}

	return quotes
}

// Add validates text and category, appends a local-only quote and persists.
// Returns a domain.ValidationError without touching state when either is empty.
func (s *QuoteStore) Add(ctx context.Context, text, category string) (domain.Quote, error) {
	q, err := domain.NewQuote(text, category)
	if err != nil {
		return domain.Quote{}, err
	}

	return s.Append(ctx, q)
}

// Append adds an already built quote to the end of the list and persists.
func (s *QuoteStore) Append(ctx context.Context, q domain.Quote) (domain.Quote, error) {
	if err := q.Validate(); err != nil {
		return domain.Quote{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return domain.Quote{}, err
	}

	next := append(s.quotes.Clone(), q)
	if err := s.commit(ctx, next); err != nil {
		return domain.Quote{}, err
	}

	s.logger.InfoContext(ctx, "quote added",
		slog.String("category", q.Category),
		slog.Bool("remote", q.HasID()),
	)

	return q, nil
}

// AppendAll adds every quote in order as one mutation.
func (s *QuoteStore) AppendAll(ctx context.Context, quotes domain.QuoteList) error {
	if len(quotes) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return err
	}

	next := append(s.quotes.Clone(), quotes...)

	return s.commit(ctx, next)
}

// All returns a copy of the full list.
func (s *QuoteStore) All() domain.QuoteList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.quotes.Clone()
}

// Len returns the number of quotes.
func (s *QuoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// ListByCategory returns the quotes matching selected exactly, or all of them
// for the sentinel category.
func (s *QuoteStore) ListByCategory(selected string) domain.QuoteList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.FilterByCategory(s.quotes, selected)
}

// Categories returns the derived category set.
func (s *QuoteStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Categories(s.quotes)
}

// PickRandom returns a uniformly chosen quote, or false when the list is empty.
func (s *QuoteStore) PickRandom() (domain.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.quotes) == 0 {
		return domain.Quote{}, false
	}

	return s.quotes[s.intn(len(s.quotes))], true
}

// ApplyRemote reconciles a remote batch into the list. Storage is only
// written when the merge changed something.
func (s *QuoteStore) ApplyRemote(ctx context.Context, remote domain.QuoteList) (domain.MergeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return domain.MergeResult{}, err
	}

	result := domain.Reconcile(s.quotes, remote)
	if !result.Changed() {
		return result, nil
	}

	if err := s.commit(ctx, result.Merged); err != nil {
		return domain.MergeResult{Merged: s.quotes.Clone()}, err
	}

	return result, nil
}

// LocalOnly returns the quotes that have no remote ID, with their positions.
func (s *QuoteStore) LocalOnly() []IndexedQuote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []IndexedQuote

	for i, q := range s.quotes {
		if !q.HasID() {
			out = append(out, IndexedQuote{Index: i, Quote: q})
		}
	}

	return out
}

// AssignIDs sets server IDs on id-less quotes in place. An assignment is
// skipped when the entry at its index no longer matches the original.
// Returns how many were applied.
func (s *QuoteStore) AssignIDs(ctx context.Context, assignments []IDAssignment) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return 0, err
	}

	next := s.quotes.Clone()
	applied := 0

	for _, a := range assignments {
		if a.Index < 0 || a.Index >= len(next) || !next[a.Index].Equal(a.Original) {
			s.logger.WarnContext(ctx, "skipping stale id assignment", slog.Int("index", a.Index))
			continue
		}

		next[a.Index] = next[a.Index].WithID(a.ID)
		applied++
	}

	if applied == 0 {
		return 0, nil
	}

	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}

	return applied, nil
}

// commit persists next and swaps it in. Callers hold the write lock and have
// loaded the list, so next is always a full snapshot.
func (s *QuoteStore) commit(ctx context.Context, next domain.QuoteList) error {
	if err := s.storage.SaveQuotes(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "persisting quotes failed", slog.Any("error", err))

		return fmt.Errorf("persisting quotes: %w", err)
	}

	s.quotes = next

	return nil
}
