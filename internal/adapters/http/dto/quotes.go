package dto

import (
	"time"

	"github.com/jsamuelsen/quotegen/internal/adapters/notify"
	"github.com/jsamuelsen/quotegen/internal/app"
	"github.com/jsamuelsen/quotegen/internal/domain"
)

// AddQuoteRequest is the body of POST /quotes. Emptiness is checked by the
// quote service so the rejection reaches the notification feed.
type AddQuoteRequest struct {
	Text     string `json:"text" validate:"max=1000"`
	Category string `json:"category" validate:"max=100"`
}

// SelectCategoryRequest is the body of PUT /categories/selected.
type SelectCategoryRequest struct {
	Category string `json:"category" validate:"required,notempty"`
}

// ListQuotesRequest holds the query of GET /quotes.
type ListQuotesRequest struct {
	PageRequest

	// Category filters the list. Empty means the selected category.
	Category string `form:"category" json:"category"`
}

// QuoteResponse is a single quote.
type QuoteResponse struct {
	ID       *int   `json:"id,omitempty"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Local    bool   `json:"local"`
}

// QuoteListResponse is a page of quotes in one category.
type QuoteListResponse struct {
	Category string `json:"category"`
	Page[QuoteResponse]
}

// CategoriesResponse lists the derived categories and the selected one.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Selected   string   `json:"selected"`
}

// ImportResponse reports how many quotes an import appended.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// SyncResponse reports the outcome of a manual sync.
type SyncResponse struct {
	Result  string `json:"result"`
	Updated int    `json:"updated"`
	Added   int    `json:"added"`
}

// PushResponse reports the outcome of pushing local-only quotes.
type PushResponse struct {
	Pending   int `json:"pending"`
	Submitted int `json:"submitted"`
	Failed    int `json:"failed"`
}

// NotificationResponse is one entry of the notification feed.
type NotificationResponse struct {
	ID      uint64    `json:"id"`
	At      time.Time `json:"at"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// NotificationsRequest holds the query of GET /notifications.
type NotificationsRequest struct {
	Limit int `form:"limit" validate:"omitempty,gte=1,lte=1000"`
}

// ToQuoteResponse converts a domain quote.
func ToQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:       q.ID,
		Text:     q.Text,
		Category: q.Category,
		Local:    !q.HasID(),
	}
}

// ToQuoteResponses converts a list, keeping order.
func ToQuoteResponses(quotes domain.QuoteList) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = ToQuoteResponse(q)
	}

	return out
}

// ToSyncResponse converts a sync report.
func ToSyncResponse(r app.SyncReport) SyncResponse {
	return SyncResponse{Result: r.Result, Updated: r.Updated, Added: r.Added}
}

// ToPushResponse converts a push report.
func ToPushResponse(r app.PushReport) PushResponse {
	return PushResponse{Pending: r.Pending, Submitted: r.Submitted, Failed: r.Failed}
}

// ToNotificationResponses converts feed entries, keeping order.
func ToNotificationResponses(entries []notify.Entry) []NotificationResponse {
	out := make([]NotificationResponse, len(entries))
	for i, e := range entries {
		out[i] = NotificationResponse{
			ID:      e.ID,
			At:      e.At,
			Level:   string(e.Level),
			Message: e.Message,
		}
	}

	return out
}
