package memory

import "sort"

// setToSlice converts an id set to a sorted slice.
//
// Sorting makes reads deterministic, which keeps record comparisons and
// serialized forms stable across calls.
func setToSlice(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// sliceToSet converts an id slice to a set, dropping duplicates.
func sliceToSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
