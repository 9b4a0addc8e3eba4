// Package crawl backfills raw article bodies for highlighted bookmarks that
// the archive download is missing. Pages are fetched over the network, their
// main content is extracted and the result is returned as raw articles ready
// to be merged into the library.
package crawl

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pinnedref"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched at once when
// Crawler.Concurrency is unset.
const DefaultConcurrency = 4

// Crawler fetches and extracts missing article bodies.
type Crawler struct {
	Fetcher   pinnedref.Fetcher
	Extractor pinnedref.Extractor

	// Fallback, if set, is tried when Extractor fails or finds no content.
	Fallback pinnedref.Extractor

	// RateLimiter, if set, is waited on before every request.
	RateLimiter pinnedref.DomainLimiter

	Concurrency int
	RetryDelays []time.Duration

	// OnRetry, if set, is called before each retry of a failed fetch.
	OnRetry RetryFunc
}

// Result holds the outcome of a backfill.
type Result struct {
	// Articles holds the recovered bodies in first-highlight order.
	Articles    []pinnedref.RawArticle
	Diagnostics *pinnedref.Diagnostics
	Fetched     int
	Failed      int
}

// ProgressEvent reports progress during a backfill.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting backfill progress.
type ProgressFunc func(event ProgressEvent)

// job is one distinct URL and the bookmarks saved under it.
type job struct {
	position    int
	url         string
	domain      string
	bookmarkIDs []int64
}

// jobResult holds the outcome of processing a single job.
type jobResult struct {
	position int
	body     string
	err      error
}

// Backfill fetches bodies for every bookmark in lib that has highlights but
// no raw article. A URL saved under several bookmarks is fetched once.
//
// Bookmarks that cannot be resolved or fetched are reported in the result
// diagnostics. Only context cancellation returns an error.
func (c *Crawler) Backfill(ctx context.Context, lib *pinnedref.Library, progress ProgressFunc) (*Result, error) {
	result := &Result{Diagnostics: &pinnedref.Diagnostics{}}
	jobs := c.plan(lib, result.Diagnostics)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan jobResult, len(jobs))
	var completed atomic.Int64
	total := len(jobs)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, j := range jobs {
			g.Go(func() error {
				resultCh <- c.processJob(gctx, j)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]jobResult, len(jobs))
	for r := range resultCh {
		completed.Add(1)
		results[r.position] = r

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			URL:       jobs[r.position].url,
		}
		if r.err != nil {
			event.Type = ProgressFailed
			event.Error = r.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, r := range results {
		j := jobs[i]
		if r.err != nil {
			result.Failed++
			for _, id := range j.bookmarkIDs {
				result.Diagnostics.Add(pinnedref.DiagFetchFailed, id, "fetch %s: %s", j.url, pinnedref.ErrorMessage(r.err))
			}
			continue
		}
		result.Fetched++
		for _, id := range j.bookmarkIDs {
			result.Articles = append(result.Articles, pinnedref.RawArticle{BookmarkID: id, Text: r.body})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// plan resolves the missing bookmarks to distinct fetch jobs.
func (c *Crawler) plan(lib *pinnedref.Library, diags *pinnedref.Diagnostics) []job {
	bookmarks := pinnedref.NewBookmarkIndex(lib.Bookmarks)

	var jobs []job
	byURL := make(map[string]int)
	for _, id := range lib.MissingArticles() {
		bm, err := bookmarks.Lookup(id)
		if err != nil {
			diags.Add(pinnedref.DiagMissingJoin, id, "%s", pinnedref.ErrorMessage(err))
			continue
		}
		domain, err := pinnedref.ParseDomain(bm.URL)
		if err != nil {
			diags.Add(pinnedref.DiagMalformedURL, id, "%s", pinnedref.ErrorMessage(err))
			continue
		}

		if i, ok := byURL[bm.URL]; ok {
			jobs[i].bookmarkIDs = append(jobs[i].bookmarkIDs, id)
			continue
		}
		byURL[bm.URL] = len(jobs)
		jobs = append(jobs, job{
			position:    len(jobs),
			url:         bm.URL,
			domain:      domain,
			bookmarkIDs: []int64{id},
		})
	}
	return jobs
}

// processJob fetches and extracts a single page.
func (c *Crawler) processJob(ctx context.Context, j job) jobResult {
	result := jobResult{position: j.position}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, j.domain); err != nil {
			result.err = err
			return result
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, c.Fetcher, j.url, delays, c.OnRetry)
	if err != nil {
		result.err = err
		return result
	}

	result.body, result.err = c.extract(html)
	return result
}

// extract runs the primary extractor and falls back when it fails or finds
// nothing.
func (c *Crawler) extract(html string) (string, error) {
	extracted, err := c.Extractor.Extract(html)
	if err == nil && strings.TrimSpace(extracted.ContentHTML) != "" {
		return extracted.ContentHTML, nil
	}
	if c.Fallback == nil {
		if err != nil {
			return "", err
		}
		return "", pinnedref.Errorf(pinnedref.ENOTFOUND, "no article content found")
	}

	extracted, err = c.Fallback.Extract(html)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(extracted.ContentHTML) == "" {
		return "", pinnedref.Errorf(pinnedref.ENOTFOUND, "no article content found")
	}
	return extracted.ContentHTML, nil
}
