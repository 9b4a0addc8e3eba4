package fs

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fwojciec/pinnedref"
)

// Ensure CardService implements pinnedref.CardService at compile time.
var _ pinnedref.CardService = (*CardService)(nil)

// CardService stores the card corpus as a JSON array in article_data.json.
type CardService struct {
	mu  sync.Mutex
	dir string
}

// NewCardService creates a CardService rooted at dir.
func NewCardService(dir string) *CardService {
	return &CardService{dir: dir}
}

func (s *CardService) path() string {
	return filepath.Join(s.dir, CardsFile)
}

// ReplaceCards validates and writes the corpus, replacing any previous one.
func (s *CardService) ReplaceCards(ctx context.Context, cards []*pinnedref.Card) error {
	seen := make(map[int64]bool, len(cards))
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return err
		}
		if seen[c.BookmarkID] {
			return pinnedref.Errorf(pinnedref.ECONFLICT, "duplicate card for bookmark %d", c.BookmarkID)
		}
		seen[c.BookmarkID] = true
	}
	if cards == nil {
		cards = []*pinnedref.Card{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path(), cards)
}

// FindCardByBookmarkID returns the card for a bookmark.
// Returns ENOTFOUND if the corpus is missing or has no such card.
func (s *CardService) FindCardByBookmarkID(ctx context.Context, id int64) (*pinnedref.Card, error) {
	cards, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, c := range cards {
		if c.BookmarkID == id {
			return c, nil
		}
	}
	return nil, pinnedref.Errorf(pinnedref.ENOTFOUND, "card for bookmark %d not found", id)
}

// FindCards returns the cards matching filter in corpus order.
// Returns ENOTFOUND if the corpus has not been built.
func (s *CardService) FindCards(ctx context.Context, filter pinnedref.CardFilter) ([]*pinnedref.Card, error) {
	cards, err := s.load()
	if err != nil {
		return nil, err
	}

	var out []*pinnedref.Card
	skipped := 0
	for _, c := range cards {
		if !filter.Match(c) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		out = append(out, c)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *CardService) load() ([]*pinnedref.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cards []*pinnedref.Card
	if err := readJSON(s.path(), &cards); err != nil {
		return nil, err
	}
	return cards, nil
}
