package mock

import (
	"context"

	"github.com/fwojciec/pinnedref"
)

var _ pinnedref.SearchIndexService = (*SearchIndexService)(nil)

// SearchIndexService is a mock implementation of pinnedref.SearchIndexService.
type SearchIndexService struct {
	ReplaceSearchIndexFn func(ctx context.Context, idx pinnedref.SearchIndex) error
	FindSearchIndexFn    func(ctx context.Context) (pinnedref.SearchIndex, error)
	SearchFn             func(ctx context.Context, query string) ([]int64, error)
}

func (s *SearchIndexService) ReplaceSearchIndex(ctx context.Context, idx pinnedref.SearchIndex) error {
	return s.ReplaceSearchIndexFn(ctx, idx)
}

func (s *SearchIndexService) FindSearchIndex(ctx context.Context) (pinnedref.SearchIndex, error) {
	return s.FindSearchIndexFn(ctx)
}

func (s *SearchIndexService) Search(ctx context.Context, query string) ([]int64, error) {
	return s.SearchFn(ctx, query)
}
