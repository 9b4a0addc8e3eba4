package pinnedref

import (
	"fmt"
	"strings"
)

// FormatCard formats an article's cards as plain text for terminal display.
// Marked highlight spans are shown between double equals signs.
func FormatCard(c *Card) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(c.Title)
	if c.Domain != "" {
		b.WriteString(" (" + c.Domain + ")")
	}
	b.WriteString("\n")
	b.WriteString(c.URL)
	b.WriteString("\n")
	for _, card := range c.Cards {
		b.WriteString("\n- ")
		b.WriteString(cardPlainText(card))
	}
	return b.String()
}

// FormatCardList formats one summary line per card.
func FormatCardList(cards []*Card) string {
	if len(cards) == 0 {
		return ""
	}

	lines := make([]string, 0, len(cards))
	for _, c := range cards {
		title := c.Title
		if title == "" {
			title = c.URL
		}
		lines = append(lines, fmt.Sprintf("%d  %s  (%s, %d highlights)", c.BookmarkID, title, c.Domain, len(c.Cards)))
	}
	return strings.Join(lines, "\n")
}

func cardPlainText(html string) string {
	html = strings.ReplaceAll(html, "<mark>", "==")
	html = strings.ReplaceAll(html, "</mark>", "==")
	return strings.TrimSpace(StripAllTags(html))
}
