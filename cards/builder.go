// Package cards builds highlight cards from a read-it-later archive and
// derives the summary fragment and search index from the card corpus.
package cards

import (
	"context"

	"github.com/fwojciec/pinnedref"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of articles processed at once when
// Builder.Concurrency is unset.
const DefaultConcurrency = 8

// Builder turns a library into a card corpus.
type Builder struct {
	Concurrency int
}

// Result holds the outcome of a build.
type Result struct {
	Cards       []*pinnedref.Card
	Diagnostics *pinnedref.Diagnostics
	Skipped     int
}

// articleResult holds the outcome of processing a single article.
type articleResult struct {
	card  *pinnedref.Card
	diags pinnedref.Diagnostics
}

// Build extracts, matches and cards every raw article in the library.
//
// Cards follow the order of lib.Articles. Articles that cannot be joined to a
// bookmark, have no usable highlight fragments or have a malformed URL are
// skipped and reported in the result diagnostics; they never fail the build.
// Only the first body of a bookmark is carded; later bodies with the same
// bookmark id are skipped as duplicates. Only context cancellation returns an
// error.
func (b *Builder) Build(ctx context.Context, lib *pinnedref.Library) (*Result, error) {
	bookmarks := pinnedref.NewBookmarkIndex(lib.Bookmarks)
	highlights := pinnedref.CollectHighlights(lib.Highlights)

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]articleResult, len(lib.Articles))
	seen := make(map[int64]int, len(lib.Articles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range lib.Articles {
		id := lib.Articles[i].BookmarkID
		if first, ok := seen[id]; ok {
			results[i].diags.Add(pinnedref.DiagDuplicateArticle, id,
				"article %d is another body for the bookmark of article %d, skipped", i, first)
			continue
		}
		seen[id] = i

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = buildArticle(&lib.Articles[i], bookmarks, highlights)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Diagnostics: &pinnedref.Diagnostics{}}
	for i := range results {
		result.Diagnostics.Merge(&results[i].diags)
		if results[i].card == nil {
			result.Skipped++
			continue
		}
		result.Cards = append(result.Cards, results[i].card)
	}
	return result, nil
}

// buildArticle joins one raw article with its bookmark and highlights and
// builds its card. A nil card means the article was skipped.
func buildArticle(article *pinnedref.RawArticle, bookmarks *pinnedref.BookmarkIndex, highlights map[int64][]string) articleResult {
	var r articleResult
	id := article.BookmarkID

	bm, err := bookmarks.Lookup(id)
	if err != nil {
		r.diags.Add(pinnedref.DiagMissingJoin, id, "%s", pinnedref.ErrorMessage(err))
		return r
	}

	fragments := highlights[id]
	if len(fragments) == 0 {
		r.diags.Add(pinnedref.DiagNoHighlights, id, "no highlight fragments for %q", bm.Title)
		return r
	}

	items := pinnedref.ExtractBlocks(article.Text)
	if len(items) == 0 {
		r.diags.Add(pinnedref.DiagEmptyExtraction, id,
			"no blocks extracted from %q, using %d highlights as cards", bm.Title, len(fragments))
	}

	card, err := BuildCard(&pinnedref.HighlightedArticle{
		BookmarkID:    id,
		Title:         bm.Title,
		URL:           bm.URL,
		RawHighlights: fragments,
		ArticleItems:  items,
	}, &r.diags)
	if err != nil {
		r.diags.Add(pinnedref.DiagMalformedURL, id, "%s", pinnedref.ErrorMessage(err))
		return r
	}

	r.card = card
	return r
}
