package storage

import (
	"context"
	"sync"

	"github.com/jsamuelsen/quotegen/internal/domain"
)

// Memory keeps values in process memory. Data is lost on exit.
type Memory struct {
	mu       sync.RWMutex
	blob     []byte
	category *string
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadQuotes implements ports.QuoteStorage.
func (m *Memory) LoadQuotes(_ context.Context) (domain.QuoteList, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.blob == nil {
		return nil, notFound(KeyQuotes)
	}

	return decodeQuotes(m.blob)
}

// SaveQuotes implements ports.QuoteStorage.
func (m *Memory) SaveQuotes(_ context.Context, quotes domain.QuoteList) error {
	data, err := encodeQuotes(quotes)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.blob = data
	m.mu.Unlock()

	return nil
}

// LoadCategory implements ports.QuoteStorage.
func (m *Memory) LoadCategory(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.category == nil {
		return "", notFound(KeyCategory)
	}

	return *m.category, nil
}

// SaveCategory implements ports.QuoteStorage.
func (m *Memory) SaveCategory(_ context.Context, category string) error {
	m.mu.Lock()
	m.category = &category
	m.mu.Unlock()

	return nil
}

// Close implements ports.QuoteStorage.
func (m *Memory) Close() error { return nil }

// Name implements ports.HealthChecker.
func (m *Memory) Name() string { return "storage" }

// Check implements ports.HealthChecker.
func (m *Memory) Check(context.Context) error { return nil }
