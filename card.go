package pinnedref

import (
	"context"
	"net/url"
	"strings"
)

// HighlightedArticle joins a raw article with its bookmark and highlight
// fragments. It is the input to card building.
type HighlightedArticle struct {
	BookmarkID    int64
	Title         string
	URL           string
	RawHighlights []string
	ArticleItems  []string
}

// Card holds the highlighted blocks selected for one article.
type Card struct {
	Title      string   `json:"title"`
	BookmarkID int64    `json:"bookmark_id"`
	URL        string   `json:"url"`
	Domain     string   `json:"domain"`
	Cards      []string `json:"cards"`
	Ranking    int64    `json:"ranking"` // reserved, always 0
}

// Validate returns an error if the card contains invalid fields.
func (c *Card) Validate() error {
	if c.BookmarkID == 0 {
		return Errorf(EINVALID, "card bookmark ID required")
	}
	if c.URL == "" {
		return Errorf(EINVALID, "card %d URL required", c.BookmarkID)
	}
	return nil
}

// Text returns all card fragments joined by a single space.
func (c *Card) Text() string {
	return strings.Join(c.Cards, " ")
}

// ParseDomain returns the host component of rawURL without any port.
// Returns EINVALID if the URL cannot be parsed or has no host.
func ParseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Hostname() == "" {
		return "", Errorf(EINVALID, "URL %q has no host", rawURL)
	}
	return u.Hostname(), nil
}

// CardService represents a service for managing the card corpus.
type CardService interface {
	// ReplaceCards replaces the stored corpus. Corpus order is preserved.
	ReplaceCards(ctx context.Context, cards []*Card) error

	// FindCardByBookmarkID retrieves the card for a bookmark.
	// Returns ENOTFOUND if the bookmark has no card.
	FindCardByBookmarkID(ctx context.Context, id int64) (*Card, error)

	// FindCards retrieves cards matching the filter in corpus order.
	FindCards(ctx context.Context, filter CardFilter) ([]*Card, error)
}

// CardFilter represents a filter for FindCards.
type CardFilter struct {
	BookmarkIDs []int64 `json:"bookmarkIds"`
	Domain      *string `json:"domain"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Match returns true if the card passes the filter, ignoring pagination.
func (f CardFilter) Match(c *Card) bool {
	if f.Domain != nil && c.Domain != *f.Domain {
		return false
	}
	if len(f.BookmarkIDs) == 0 {
		return true
	}
	for _, id := range f.BookmarkIDs {
		if id == c.BookmarkID {
			return true
		}
	}
	return false
}
