package entry

import "sort"

// SortDescending sorts entries in place by timestamp, most recent first.
// Entries with equal timestamps keep their relative order.
func SortDescending(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}

// IsSortedDescending reports whether entries are ordered most recent first
func IsSortedDescending(entries []Entry) bool {
	return sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}
