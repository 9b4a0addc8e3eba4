package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pinnedref"
)

// Ensure LoggingSearchIndexService implements pinnedref.SearchIndexService.
var _ pinnedref.SearchIndexService = (*LoggingSearchIndexService)(nil)

// LoggingSearchIndexService wraps a SearchIndexService with debug logging.
type LoggingSearchIndexService struct {
	next   pinnedref.SearchIndexService
	logger *slog.Logger
}

// NewLoggingSearchIndexService creates a new LoggingSearchIndexService.
func NewLoggingSearchIndexService(next pinnedref.SearchIndexService, logger *slog.Logger) *LoggingSearchIndexService {
	return &LoggingSearchIndexService{next: next, logger: logger}
}

// ReplaceSearchIndex delegates to the wrapped service and logs the operation.
func (s *LoggingSearchIndexService) ReplaceSearchIndex(ctx context.Context, idx pinnedref.SearchIndex) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("replace search index",
			"tokens", len(idx),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceSearchIndex(ctx, idx)
}

// FindSearchIndex delegates to the wrapped service and logs the operation.
func (s *LoggingSearchIndexService) FindSearchIndex(ctx context.Context) (idx pinnedref.SearchIndex, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find search index",
			"tokens", len(idx),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSearchIndex(ctx)
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchIndexService) Search(ctx context.Context, query string) (ids []int64, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"hits", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
