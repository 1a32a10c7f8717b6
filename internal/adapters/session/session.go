// Package session keeps session-scoped state in an expiring in-process cache.
package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jsamuelsen/quotegen/internal/domain"
)

const keyLastViewed = "last_viewed"

// DefaultTTL bounds a session when no TTL is configured.
const DefaultTTL = 30 * time.Minute

// Store implements ports.SessionStore. Values expire ttl after they were last
// written, which ends the session.
type Store struct {
	cache *cache.Cache
}

// New returns an empty session.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{cache: cache.New(ttl, ttl)}
}

// LastViewed implements ports.SessionStore.
func (s *Store) LastViewed(_ context.Context) (domain.Quote, error) {
	if v, found := s.cache.Get(keyLastViewed); found {
		return v.(domain.Quote), nil
	}

	return domain.Quote{}, domain.NewNotFoundError("last viewed quote", "")
}

// SetLastViewed implements ports.SessionStore.
func (s *Store) SetLastViewed(_ context.Context, q domain.Quote) error {
	if q.ID != nil {
		id := *q.ID
		q.ID = &id
	}

	s.cache.Set(keyLastViewed, q, cache.DefaultExpiration)

	return nil
}

// Clear implements ports.SessionStore.
func (s *Store) Clear(_ context.Context) {
	s.cache.Flush()
}
