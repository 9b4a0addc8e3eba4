// Package trafilatura extracts article bodies with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pinnedref"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pinnedref.Extractor at compile time.
var _ pinnedref.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main article body from a
// fetched page.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Comments are excluded and the
// readability and dom-distiller fallbacks are enabled.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract processes a fetched page and returns its main content. The content
// wrapper element is dropped so the body starts with its block elements.
func (e *Extractor) Extract(rawHTML string) (*pinnedref.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pinnedref.Errorf(pinnedref.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderChildren(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &pinnedref.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderChildren renders the children of n without n itself.
func renderChildren(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
