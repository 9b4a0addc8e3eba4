package mock

import (
	"context"

	"github.com/fwojciec/pinnedref"
)

var _ pinnedref.LibraryService = (*LibraryService)(nil)

// LibraryService is a mock implementation of pinnedref.LibraryService.
type LibraryService struct {
	LibraryFn     func(ctx context.Context) (*pinnedref.Library, error)
	AddArticlesFn func(ctx context.Context, articles []pinnedref.RawArticle) error
}

func (s *LibraryService) Library(ctx context.Context) (*pinnedref.Library, error) {
	return s.LibraryFn(ctx)
}

func (s *LibraryService) AddArticles(ctx context.Context, articles []pinnedref.RawArticle) error {
	return s.AddArticlesFn(ctx, articles)
}
