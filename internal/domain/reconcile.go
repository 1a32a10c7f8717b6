package domain

// MergeResult is the outcome of reconciling a remote batch into a local list.
type MergeResult struct {
	Merged  QuoteList
	Updated int
	Added   int
}

// Changed reports whether the merge altered the local list.
// Callers skip persistence and refresh when it returns false.
func (r MergeResult) Changed() bool {
	return r.Updated != 0 || r.Added != 0
}

// Reconcile merges remote into local by identifier.
//
// Remote wins on collision: an entry with the same ID is replaced in full,
// keeping its position. Anything else is appended in remote order.
// A replacement by an identical record is not counted, so a second pass with
// the same remote batch reports no change. Neither input is modified.
func Reconcile(local, remote QuoteList) MergeResult {
	result := MergeResult{Merged: local.Clone()}

	for _, r := range remote {
		if i := indexOfEntity(result.Merged, r); i >= 0 {
			if !result.Merged[i].Equal(r) {
				result.Merged[i] = r
				result.Updated++
			}

			continue
		}

		result.Merged = append(result.Merged, r)
		result.Added++
	}

	return result
}

func indexOfEntity(quotes QuoteList, target Quote) int {
	if !target.HasID() {
		return -1
	}

	for i := range quotes {
		if quotes[i].SameEntity(target) {
			return i
		}
	}

	return -1
}
