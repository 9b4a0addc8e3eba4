package pinnedref

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// noiseTags are layout containers removed before block extraction.
	noiseTags = NewTagSet("a", "img", "div", "ul", "ol")

	// BlockTags are the tags whose spans become extracted blocks.
	BlockTags = NewTagSet("p", "h1", "h2", "h3", "h4", "h5", "h6", "li")
)

// ExtractBlocks segments an article body into its paragraph, heading and
// list-item blocks, in document order. Each block includes its enclosing tags.
//
// Footnote anchors, layout containers and newlines are removed first. A block
// runs from an opening tag to the first closing tag of the same name; an
// opening tag with no closing tag yields no block. Malformed markup is
// skipped rather than reported.
func ExtractBlocks(text string) []string {
	cleaned := removeNoise(text)

	var blocks []string
	for pos := 0; ; {
		open, ok := NextTag(cleaned, pos)
		if !ok {
			break
		}
		pos = open.End
		if open.Closing || open.SelfClosing || !BlockTags.Has(open.Name) {
			continue
		}

		end, ok := closingTagEnd(cleaned, open.End, open.Name)
		if !ok {
			continue
		}
		blocks = append(blocks, cleaned[open.Start:end])
		pos = end
	}
	return blocks
}

// closingTagEnd finds the first </name> at or after from and returns the
// offset just past it.
func closingTagEnd(s string, from int, name string) (int, bool) {
	for pos := from; ; {
		tag, ok := NextTag(s, pos)
		if !ok {
			return 0, false
		}
		if tag.Closing && tag.Name == name {
			return tag.End, true
		}
		pos = tag.End
	}
}

// removeNoise drops newlines, single-digit footnote anchors and noise tags.
func removeNoise(text string) string {
	text = strings.ReplaceAll(text, "\n", "")

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for pos := 0; ; {
		tag, ok := NextTag(text, pos)
		if !ok {
			break
		}
		pos = tag.End
		if !noiseTags.Has(tag.Name) {
			continue
		}

		end := tag.End
		if tag.Name == "a" && !tag.Closing {
			if footnote, ok := footnoteEnd(text, tag.End); ok {
				end = footnote
			}
		}
		b.WriteString(text[last:tag.Start])
		last, pos = end, end
	}
	b.WriteString(text[last:])
	return b.String()
}

// footnoteEnd reports whether text[from:] is a single digit followed by
// </a>, returning the offset past the closing tag.
func footnoteEnd(text string, from int) (int, bool) {
	r, size := utf8.DecodeRuneInString(text[from:])
	if size == 0 || !unicode.IsDigit(r) {
		return 0, false
	}
	tag, ok := parseTag(text, from+size)
	if !ok || !tag.Closing || tag.Name != "a" {
		return 0, false
	}
	return tag.End, true
}
