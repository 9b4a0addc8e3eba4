package cards

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pinnedref"
)

// RenderNote converts a card into a Markdown note, one paragraph per card
// fragment.
func RenderNote(c *pinnedref.Card, conv pinnedref.Converter) (*pinnedref.Note, error) {
	parts := make([]string, 0, len(c.Cards))
	for i, fragment := range c.Cards {
		md, err := conv.Convert(fragment)
		if err != nil {
			return nil, fmt.Errorf("bookmark %d card %d: %w", c.BookmarkID, i, err)
		}
		parts = append(parts, md)
	}

	return &pinnedref.Note{
		BookmarkID: c.BookmarkID,
		Source:     c.URL,
		Title:      c.Title,
		Domain:     c.Domain,
		Highlights: len(c.Cards),
		Content:    strings.Join(parts, "\n\n"),
	}, nil
}
