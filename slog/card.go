package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pinnedref"
)

// Ensure LoggingCardService implements pinnedref.CardService.
var _ pinnedref.CardService = (*LoggingCardService)(nil)

// LoggingCardService wraps a CardService with debug logging.
type LoggingCardService struct {
	next   pinnedref.CardService
	logger *slog.Logger
}

// NewLoggingCardService creates a new LoggingCardService.
func NewLoggingCardService(next pinnedref.CardService, logger *slog.Logger) *LoggingCardService {
	return &LoggingCardService{next: next, logger: logger}
}

// ReplaceCards delegates to the wrapped service and logs the operation.
func (s *LoggingCardService) ReplaceCards(ctx context.Context, cards []*pinnedref.Card) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("replace cards",
			"articles", len(cards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceCards(ctx, cards)
}

// FindCardByBookmarkID delegates to the wrapped service and logs the operation.
func (s *LoggingCardService) FindCardByBookmarkID(ctx context.Context, id int64) (card *pinnedref.Card, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find card",
			"bookmark_id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCardByBookmarkID(ctx, id)
}

// FindCards delegates to the wrapped service and logs the operation.
func (s *LoggingCardService) FindCards(ctx context.Context, filter pinnedref.CardFilter) (cards []*pinnedref.Card, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find cards",
			"count", len(cards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCards(ctx, filter)
}
