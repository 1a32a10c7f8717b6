package dto

// DefaultLimit is the page size used when the request does not set one.
const DefaultLimit = 20

// MaxLimit caps the page size.
const MaxLimit = 100

// PageRequest holds offset pagination query parameters.
type PageRequest struct {
	Offset int `form:"offset" json:"offset" validate:"gte=0"`
	Limit  int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PageRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return min(p.Limit, MaxLimit)
}

// Page is one window over an ordered result.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`

	// NextOffset is set when more items follow this page.
	NextOffset *int `json:"nextOffset,omitempty"`
}

// Paginate cuts the window described by req out of all, preserving order.
// An offset past the end yields an empty page.
func Paginate[T any](all []T, req PageRequest) Page[T] {
	total := len(all)
	start := min(max(req.Offset, 0), total)
	end := min(start+req.GetLimit(), total)

	items := make([]T, end-start)
	copy(items, all[start:end])

	page := Page[T]{Items: items, Total: total}

	if end < total {
		next := end
		page.NextOffset = &next
	}

	return page
}
