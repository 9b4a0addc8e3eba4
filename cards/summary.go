package cards

import (
	"cmp"
	"fmt"
	"html"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pinnedref"
)

// DefaultSampleSize is the number of cards drawn for a summary.
const DefaultSampleSize = 10

// Selection is one card drawn for the summary.
type Selection struct {
	Title  string
	Text   string
	URL    string
	Domain string
	Length int // characters in Text
	Others int // total cards in the owning article
}

// Sample draws n cards independently: each draw picks a uniformly random
// article, then a uniformly random card within it. The same card may be drawn
// more than once. Articles without cards are never drawn.
func Sample(corpus []*pinnedref.Card, n int, rng *rand.Rand) []Selection {
	eligible := make([]*pinnedref.Card, 0, len(corpus))
	for _, c := range corpus {
		if len(c.Cards) > 0 {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 || n <= 0 {
		return nil
	}

	selections := make([]Selection, 0, n)
	for range n {
		article := eligible[rng.IntN(len(eligible))]
		text := article.Cards[rng.IntN(len(article.Cards))]
		selections = append(selections, Selection{
			Title:  article.Title,
			Text:   text,
			URL:    article.URL,
			Domain: article.Domain,
			Length: utf8.RuneCountInString(text),
			Others: len(article.Cards),
		})
	}
	return selections
}

// Balance splits selections into two columns of similar total length.
//
// Selections are ordered longest first; the first column ends at the first
// selection whose running total exceeds half of the overall length.
func Balance(selections []Selection) (left, right []Selection) {
	sorted := slices.Clone(selections)
	slices.SortStableFunc(sorted, func(a, b Selection) int {
		return cmp.Compare(b.Length, a.Length)
	})

	total := 0
	for _, s := range sorted {
		total += s.Length
	}
	half := total / 2

	split := len(sorted)
	running := 0
	for i, s := range sorted {
		running += s.Length
		if running > half {
			split = i + 1
			break
		}
	}
	return sorted[:split], sorted[split:]
}

// RenderSummary balances selections and renders them as two column divs of
// card divs.
func RenderSummary(selections []Selection) string {
	left, right := Balance(selections)

	var b strings.Builder
	for _, column := range [][]Selection{left, right} {
		b.WriteString("<div class='col'>")
		for _, s := range column {
			writeCard(&b, s)
		}
		b.WriteString("</div>")
	}
	return b.String()
}

func writeCard(b *strings.Builder, s Selection) {
	fmt.Fprintf(b, "<div class='card'><h3>%s</h3>%s<h5>%d other highlights</h5><h4><a href='%s'>%s</a></h4></div>",
		escapeText(s.Title),
		SanitizeText(s.Text),
		s.Others,
		html.EscapeString(s.URL),
		escapeText(s.Domain),
	)
}

// escapeText escapes s for HTML without double-escaping existing entities.
func escapeText(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}

// SanitizeText quotes double quote characters that appear in card text
// outside of tags, including backslash-escaped ones. Markup is left intact.
func SanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for pos := 0; ; {
		tag, ok := pinnedref.NextTag(s, pos)
		if !ok {
			break
		}
		b.WriteString(quoteText(s[last:tag.Start]))
		b.WriteString(s[tag.Start:tag.End])
		last, pos = tag.End, tag.End
	}
	b.WriteString(quoteText(s[last:]))
	return b.String()
}

var quoteReplacer = strings.NewReplacer(`\"`, "&quot;", `"`, "&quot;")

func quoteText(s string) string {
	return quoteReplacer.Replace(s)
}
