package cards

import (
	"slices"
	"strings"

	"github.com/fwojciec/pinnedref"
)

// indexTags are removed before tokenizing card text for the index.
var indexTags = pinnedref.NewTagSet(
	"em", "strong", "span", "figure", "figcaption", "font", "picture",
	"li", "h1", "h2", "h3", "h4", "h5", "h6", "p", "mark", "i", "b",
)

// BuildIndex builds the search index over a card corpus, pruning tokens that
// occur in more than pinnedref.CommonTokenThreshold articles.
func BuildIndex(corpus []*pinnedref.Card) pinnedref.SearchIndex {
	return BuildIndexWithThreshold(corpus, pinnedref.CommonTokenThreshold)
}

// BuildIndexWithThreshold is like BuildIndex with a custom document frequency
// threshold.
func BuildIndexWithThreshold(corpus []*pinnedref.Card, threshold int) pinnedref.SearchIndex {
	docs := make(map[string]map[int64]struct{})
	for _, c := range corpus {
		text := strings.Join([]string{c.Text(), c.Title, c.Domain}, " ")
		text = pinnedref.StripTags(text, indexTags)
		for _, token := range pinnedref.Tokenize(text) {
			set, ok := docs[token]
			if !ok {
				set = make(map[int64]struct{})
				docs[token] = set
			}
			set[c.BookmarkID] = struct{}{}
		}
	}

	idx := make(pinnedref.SearchIndex, len(docs))
	for token, set := range docs {
		if len(set) > threshold {
			continue
		}
		ids := make([]int64, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		idx[token] = ids
	}
	return idx
}
