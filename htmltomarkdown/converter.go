// Package htmltomarkdown renders card blocks as Markdown for note export.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/pinnedref"
)

var _ pinnedref.Converter = (*Converter)(nil)

// Markdown has no highlight syntax; marked spans are exported as bold.
var markReplacer = strings.NewReplacer("<mark>", "<strong>", "</mark>", "</strong>")

// Converter turns one card block (a paragraph, heading or list item with
// marked highlight spans) into a Markdown paragraph.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a Converter with CommonMark output.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Convert renders a card block. Leading and trailing blank lines are
// removed so blocks can be joined by the caller. Returns EINVALID for a
// blank block.
func (c *Converter) Convert(block string) (string, error) {
	if strings.TrimSpace(block) == "" {
		return "", pinnedref.Errorf(pinnedref.EINVALID, "empty card block")
	}

	md, err := c.conv.ConvertString(markReplacer.Replace(block))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
