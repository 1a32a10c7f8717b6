package app

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/ports"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStorage is an in-memory QuoteStorage with injectable failures.
type fakeStorage struct {
	mu        sync.Mutex
	quotes    domain.QuoteList
	hasQuotes bool
	category  string
	loadErr   error
	saveErr   error
	saves     int
	loads     int
}

func newFakeStorage(initial domain.QuoteList) *fakeStorage {
	return &fakeStorage{quotes: initial.Clone(), hasQuotes: initial != nil}
}

func (f *fakeStorage) LoadQuotes(context.Context) (domain.QuoteList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.loads++

	if f.loadErr != nil {
		return f.quotes.Clone(), f.loadErr
	}

	if !f.hasQuotes {
		return nil, domain.NewNotFoundError("quotes", "")
	}

	return f.quotes.Clone(), nil
}

func (f *fakeStorage) SaveQuotes(_ context.Context, quotes domain.QuoteList) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}

	f.quotes = quotes.Clone()
	f.hasQuotes = true
	f.saves++

	return nil
}

func (f *fakeStorage) LoadCategory(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.category == "" {
		return "", domain.NewNotFoundError("category", "")
	}

	return f.category, nil
}

func (f *fakeStorage) SaveCategory(_ context.Context, category string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.category = category

	return nil
}

func (f *fakeStorage) Close() error { return nil }

// failLoad makes LoadQuotes return readable alongside err.
func (f *fakeStorage) failLoad(readable domain.QuoteList, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.quotes = readable.Clone()
	f.loadErr = err
}

func (f *fakeStorage) snapshot() (domain.QuoteList, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.quotes.Clone(), f.saves
}

// fakeSession keeps the last viewed quote in memory.
type fakeSession struct {
	mu   sync.Mutex
	last *domain.Quote
}

func (f *fakeSession) LastViewed(context.Context) (domain.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.last == nil {
		return domain.Quote{}, domain.NewNotFoundError("last viewed quote", "")
	}

	return *f.last, nil
}

func (f *fakeSession) SetLastViewed(_ context.Context, q domain.Quote) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = &q

	return nil
}

func (f *fakeSession) Clear(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = nil
}

// recordingNotifier captures every notification.
type recordingNotifier struct {
	mu  sync.Mutex
	got []ports.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n ports.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.got = append(r.got, n)
}

func (r *recordingNotifier) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.got))
	for _, n := range r.got {
		out = append(out, n.Message)
	}

	return out
}

// recordingObserver captures sync reports.
type recordingObserver struct {
	mu      sync.Mutex
	reports []SyncReport
}

func (r *recordingObserver) ObserveSync(_ context.Context, report SyncReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append(r.reports, report)
}

func (r *recordingObserver) results() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.reports))
	for _, rep := range r.reports {
		out = append(out, rep.Result)
	}

	return out
}

func newTestStore(storage ports.QuoteStorage) *QuoteStore {
	return NewQuoteStore(QuoteStoreConfig{Storage: storage, Logger: discardLogger()})
}
