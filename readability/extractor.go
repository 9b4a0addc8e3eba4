// Package readability extracts article bodies with go-readability. It serves
// as the fallback when trafilatura finds no content.
package readability

import (
	"strings"

	"github.com/fwojciec/pinnedref"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pinnedref.Extractor at compile time.
var _ pinnedref.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes a fetched page and returns its main content.
// Returns ENOTFOUND if the page has no readable text.
func (e *Extractor) Extract(rawHTML string) (*pinnedref.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pinnedref.Errorf(pinnedref.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, pinnedref.Errorf(pinnedref.ENOTFOUND, "no readable content")
	}

	title := article.Title
	if title == "" {
		title = article.SiteName
	}

	return &pinnedref.ExtractResult{
		Title:       title,
		ContentHTML: article.Content,
	}, nil
}
