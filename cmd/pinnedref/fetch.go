package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/pinnedref"
	"github.com/fwojciec/pinnedref/crawl"
	pinslog "github.com/fwojciec/pinnedref/slog"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	lib, err := deps.Library.Library(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	missing := lib.MissingArticles()
	if len(missing) == 0 {
		fmt.Fprintln(deps.Stdout, "Every highlighted bookmark already has an article body.")
		return nil
	}

	result, err := deps.Crawler.Backfill(deps.Ctx, lib, progressPrinter(deps.Stderr))
	if err != nil {
		return err
	}
	pinslog.LogDiagnostics(deps.Logger, result.Diagnostics)

	if err := deps.Library.AddArticles(deps.Ctx, result.Articles); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinnedref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Fetched %d pages for %d bookmarks (%d failed)\n",
		result.Fetched, len(result.Articles), result.Failed)
	if len(result.Articles) > 0 {
		fmt.Fprintln(deps.Stdout, "Run 'pinnedref build' to refresh the cards.")
	}
	return nil
}

// progressPrinter writes one line per completed page.
func progressPrinter(w io.Writer) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(w, "Fetching %d pages...\n", e.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(w, "  [%d/%d] %s\n", e.Completed, e.Total, shortenURL(e.URL, 60))
		case crawl.ProgressFailed:
			fmt.Fprintf(w, "  [%d/%d] %s: %s\n", e.Completed, e.Total, shortenURL(e.URL, 60), pinnedref.ErrorMessage(e.Error))
		}
	}
}

// shortenURL trims long URLs to their last maxLen characters.
func shortenURL(url string, maxLen int) string {
	if len(url) <= maxLen || maxLen < 4 {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
