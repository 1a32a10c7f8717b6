// Package notify delivers user-facing notifications: a bounded expiring feed
// read by the HTTP API and a colored console writer used by the CLI.
package notify

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jsamuelsen/quotegen/internal/ports"
)

// Defaults applied by NewFeed.
const (
	DefaultTTL     = 10 * time.Minute
	DefaultHistory = 50
)

// Entry is a notification as kept by the feed.
type Entry struct {
	ID uint64    `json:"id"`
	At time.Time `json:"at"`
	ports.Notification
}

// Feed keeps the most recent notifications. Entries expire after ttl and at
// most history entries are retained.
type Feed struct {
	mu      sync.Mutex
	cache   *cache.Cache
	seq     uint64
	history int
	now     func() time.Time
}

// NewFeed returns an empty feed.
func NewFeed(ttl time.Duration, history int) *Feed {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if history <= 0 {
		history = DefaultHistory
	}

	return &Feed{
		cache:   cache.New(ttl, ttl),
		history: history,
		now:     time.Now,
	}
}

// Notify implements ports.Notifier.
func (f *Feed) Notify(_ context.Context, n ports.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	f.cache.Set(feedKey(f.seq), Entry{ID: f.seq, At: f.now(), Notification: n}, cache.DefaultExpiration)

	if f.seq > uint64(f.history) {
		f.cache.Delete(feedKey(f.seq - uint64(f.history)))
	}
}

// Recent returns live entries newest first, at most limit (all when limit <= 0).
func (f *Feed) Recent(limit int) []Entry {
	items := f.cache.Items()

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.Object.(Entry))
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}

func feedKey(seq uint64) string {
	return strconv.FormatUint(seq, 10)
}
