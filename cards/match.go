package cards

import (
	"cmp"
	"slices"
	"strings"

	"github.com/fwojciec/pinnedref"
)

var (
	// inlineTags are presentational tags removed before matching and display.
	inlineTags = pinnedref.NewTagSet(
		"em", "strong", "span", "figure", "figcaption", "picture",
		"li", "h1", "h2", "h3", "h4",
	)

	// paragraphTags mark a card that already carries its own block wrapper.
	paragraphTags = pinnedref.NewTagSet("p", "h1", "h2", "h3", "h4", "h5", "h6")
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// BuildCard matches an article's extracted blocks against its highlight
// fragments and returns the card holding the marked blocks.
//
// A block is selected when its tag-stripped text contains any fragment. When
// no block is selected the fragments themselves become the blocks, so an
// article with highlights always yields cards. Blocks without any mark are
// reported to diags as unmatched. Returns EINVALID if the article URL has no
// parseable host.
func BuildCard(ha *pinnedref.HighlightedArticle, diags *pinnedref.Diagnostics) (*pinnedref.Card, error) {
	domain, err := pinnedref.ParseDomain(ha.URL)
	if err != nil {
		return nil, pinnedref.Errorf(pinnedref.EINVALID, "bookmark %d: %s", ha.BookmarkID, pinnedref.ErrorMessage(err))
	}

	blocks := SelectBlocks(ha.ArticleItems, ha.RawHighlights)
	if len(blocks) == 0 {
		blocks = ha.RawHighlights
	}

	fragments := orderFragments(ha.RawHighlights)
	cards := make([]string, 0, len(blocks))
	for i, block := range blocks {
		clean := pinnedref.StripTags(block, inlineTags)
		marked, n := markFragments(clean, fragments)
		if n == 0 {
			diags.Add(pinnedref.DiagUnmatchedHighlight, ha.BookmarkID,
				"block %d has no marked highlight: %q", i, block)
		}
		cards = append(cards, normalizeBlock(marked))
	}

	return &pinnedref.Card{
		Title:      ha.Title,
		BookmarkID: ha.BookmarkID,
		URL:        ha.URL,
		Domain:     domain,
		Cards:      cards,
	}, nil
}

// SelectBlocks returns the blocks whose tag-stripped text contains at least
// one fragment literally, in block order.
func SelectBlocks(blocks, fragments []string) []string {
	var selected []string
	for _, block := range blocks {
		stripped := pinnedref.StripTags(block, inlineTags)
		for _, f := range fragments {
			if f != "" && strings.Contains(stripped, f) {
				selected = append(selected, block)
				break
			}
		}
	}
	return selected
}

// MarkHighlights wraps every occurrence of each fragment in text with a mark
// element and returns the result with the number of marks applied.
//
// Longer fragments claim their spans first and an occurrence overlapping an
// already marked span is skipped, so marks never nest.
func MarkHighlights(text string, fragments []string) (string, int) {
	return markFragments(text, orderFragments(fragments))
}

// orderFragments returns the distinct non-empty fragments, longest first.
// Equal lengths keep their collection order.
func orderFragments(fragments []string) []string {
	seen := make(map[string]bool, len(fragments))
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return out
}

type span struct {
	start, end int
}

func markFragments(text string, fragments []string) (string, int) {
	var spans []span
	for _, f := range fragments {
		for from := 0; from <= len(text)-len(f); {
			i := strings.Index(text[from:], f)
			if i < 0 {
				break
			}
			s := span{start: from + i, end: from + i + len(f)}
			if overlapsAny(spans, s) {
				from = s.start + 1
				continue
			}
			spans = append(spans, s)
			from = s.end
		}
	}
	if len(spans) == 0 {
		return text, 0
	}

	slices.SortFunc(spans, func(a, b span) int {
		return cmp.Compare(a.start, b.start)
	})

	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(markOpen)+len(markClose)))
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.start])
		b.WriteString(markOpen)
		b.WriteString(text[s.start:s.end])
		b.WriteString(markClose)
		last = s.end
	}
	b.WriteString(text[last:])
	return b.String(), len(spans)
}

func overlapsAny(spans []span, s span) bool {
	for _, o := range spans {
		if s.start < o.end && o.start < s.end {
			return true
		}
	}
	return false
}

// normalizeBlock unwraps list-item paragraphs and wraps bare text in a
// paragraph.
func normalizeBlock(s string) string {
	s = strings.ReplaceAll(s, "<li><p>", "<p>")
	if !pinnedref.HasTag(s, paragraphTags) {
		s = "<p>" + s + "</p>"
	}
	return s
}
