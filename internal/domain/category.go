package domain

// AllCategories is the sentinel category meaning "no filter".
const AllCategories = "All Categories"

// Categories derives the category set of a list: the sentinel first, then
// every distinct category in order of first appearance.
func Categories(quotes QuoteList) []string {
	seen := make(map[string]struct{}, len(quotes))
	out := []string{AllCategories}

	for _, q := range quotes {
		if _, ok := seen[q.Category]; ok {
			continue
		}

		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}

	return out
}

// FilterByCategory returns the quotes whose category equals selected exactly.
// The sentinel returns a copy of the full list. The input is never modified.
func FilterByCategory(quotes QuoteList, selected string) QuoteList {
	if selected == AllCategories {
		return quotes.Clone()
	}

	out := QuoteList{}

	for _, q := range quotes {
		if q.Category == selected {
			out = append(out, q)
		}
	}

	return out
}
