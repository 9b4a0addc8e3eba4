package pinnedref

import (
	"strings"
	"unicode/utf8"
)

// MinFragmentLength is the number of characters a highlight fragment must
// exceed to be kept. Shorter fragments are capture noise (single words,
// stray punctuation).
const MinFragmentLength = 15

// CollectHighlights groups highlight fragments by bookmark id.
//
// Each highlight's text is split on line breaks and a fragment is kept only
// if it is longer than MinFragmentLength characters. Fragments keep their
// encounter order within a bookmark. Every bookmark that owns a highlight gets
// an entry, even when none of its fragments survive.
func CollectHighlights(highlights []Highlight) map[int64][]string {
	m := make(map[int64][]string)
	for _, h := range highlights {
		fragments := m[h.BookmarkID]
		for _, line := range strings.Split(h.Text, "\n") {
			line = strings.TrimSuffix(line, "\r")
			if utf8.RuneCountInString(line) > MinFragmentLength {
				fragments = append(fragments, line)
			}
		}
		if fragments == nil {
			fragments = []string{}
		}
		m[h.BookmarkID] = fragments
	}
	return m
}
