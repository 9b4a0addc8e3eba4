package pinnedref

import (
	"context"
	"slices"
)

// CommonTokenThreshold is the document frequency above which a token is
// pruned from the search index.
const CommonTokenThreshold = 100

// SearchIndex maps a lowercase token to the sorted, distinct ids of the
// bookmarks whose cards contain it. No token maps to an empty list.
type SearchIndex map[string][]int64

// Lookup returns the bookmark ids containing every token of query, sorted
// ascending. Results are unranked. A query with no tokens matches nothing.
func (idx SearchIndex) Lookup(query string) []int64 {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var result []int64
	for i, token := range tokens {
		ids, ok := idx[token]
		if !ok {
			return nil
		}
		if i == 0 {
			result = slices.Clone(ids)
			continue
		}
		result = intersectSorted(result, ids)
		if len(result) == 0 {
			return nil
		}
	}
	return result
}

// intersectSorted returns the ids present in both sorted slices.
func intersectSorted(a, b []int64) []int64 {
	out := a[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// SearchIndexService represents a service for persisting and querying the
// search index.
type SearchIndexService interface {
	// ReplaceSearchIndex replaces the stored index.
	ReplaceSearchIndex(ctx context.Context, idx SearchIndex) error

	// FindSearchIndex returns the stored index.
	// Returns ENOTFOUND if no index has been stored.
	FindSearchIndex(ctx context.Context) (SearchIndex, error)

	// Search returns the ids of bookmarks containing every token of query.
	Search(ctx context.Context, query string) ([]int64, error)
}
