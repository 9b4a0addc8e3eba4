package mock

import (
	"context"

	"github.com/fwojciec/pinnedref"
)

var _ pinnedref.CardService = (*CardService)(nil)

// CardService is a mock implementation of pinnedref.CardService.
type CardService struct {
	ReplaceCardsFn         func(ctx context.Context, cards []*pinnedref.Card) error
	FindCardByBookmarkIDFn func(ctx context.Context, id int64) (*pinnedref.Card, error)
	FindCardsFn            func(ctx context.Context, filter pinnedref.CardFilter) ([]*pinnedref.Card, error)
}

func (s *CardService) ReplaceCards(ctx context.Context, cards []*pinnedref.Card) error {
	return s.ReplaceCardsFn(ctx, cards)
}

func (s *CardService) FindCardByBookmarkID(ctx context.Context, id int64) (*pinnedref.Card, error) {
	return s.FindCardByBookmarkIDFn(ctx, id)
}

func (s *CardService) FindCards(ctx context.Context, filter pinnedref.CardFilter) ([]*pinnedref.Card, error) {
	return s.FindCardsFn(ctx, filter)
}
