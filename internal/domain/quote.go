// Package domain contains core business entities and rules.
package domain

import "strings"

// Quote is a piece of text with a free-form category label.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the identifier assigned by the remote source.
	// Nil for quotes that only exist locally.
	ID *int `json:"id,omitempty"`

	// Text is the quotation itself.
	Text string `json:"text"`

	// Category is a free-form label, not a closed enumeration.
	Category string `json:"category"`
}

// QuoteList is an ordered sequence of quotes. Insertion order is significant.
type QuoteList []Quote

// NewQuote builds a local-only quote after trimming and validating both fields.
func NewQuote(text, category string) (Quote, error) {
	text = strings.TrimSpace(text)
	category = strings.TrimSpace(category)

	if text == "" {
		return Quote{}, NewValidationError("text", "cannot be empty")
	}

	if category == "" {
		return Quote{}, NewValidationError("category", "cannot be empty")
	}

	return Quote{Text: text, Category: category}, nil
}

// HasID reports whether the quote is known to the remote source.
func (q Quote) HasID() bool {
	return q.ID != nil
}

// SameEntity reports whether q and other refer to the same remote entity.
// Quotes without an ID never match anything, including each other.
func (q Quote) SameEntity(other Quote) bool {
	if q.ID == nil || other.ID == nil {
		return false
	}

	return *q.ID == *other.ID
}

// Equal reports whether q and other carry the same identifier and content.
func (q Quote) Equal(other Quote) bool {
	if q.HasID() != other.HasID() {
		return false
	}

	if q.HasID() && *q.ID != *other.ID {
		return false
	}

	return q.Text == other.Text && q.Category == other.Category
}

// WithID returns a copy of q carrying the given identifier.
func (q Quote) WithID(id int) Quote {
	q.ID = &id
	return q
}

// Validate checks the non-empty invariants of a quote that arrived from
// outside the process (imports, stored blobs).
func (q Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("text", "cannot be empty")
	}

	if strings.TrimSpace(q.Category) == "" {
		return NewValidationError("category", "cannot be empty")
	}

	if q.ID != nil && *q.ID <= 0 {
		return NewValidationErrorWithValue("id", "must be positive", *q.ID)
	}

	return nil
}

// Clone returns a copy of the list that shares no backing array with l.
func (l QuoteList) Clone() QuoteList {
	if l == nil {
		return QuoteList{}
	}

	out := make(QuoteList, len(l))
	copy(out, l)

	return out
}

// SeedQuotes returns the default list used when nothing has been persisted yet.
func SeedQuotes() QuoteList {
	return QuoteList{
		{Text: "Be the change you wish to see in the world.", Category: "Inspirational"},
		{Text: "Stay hungry, stay foolish.", Category: "Motivational"},
		{Text: "The only way to do great work is to love what you do.", Category: "Career"},
	}
}

// IntPtr is a small helper for building quotes with identifiers.
func IntPtr(v int) *int {
	return &v
}
