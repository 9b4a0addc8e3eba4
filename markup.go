package pinnedref

import "strings"

// Tag is a single markup tag located within a string.
type Tag struct {
	Name        string // lowercased tag name
	Closing     bool   // </name>
	SelfClosing bool   // <name/>
	Start       int    // offset of '<'
	End         int    // offset just past '>'
}

// TagSet is a set of lowercase tag names.
type TagSet map[string]struct{}

// NewTagSet returns a TagSet containing names.
func NewTagSet(names ...string) TagSet {
	set := make(TagSet, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// Has reports whether name is in the set.
func (s TagSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// NextTag returns the first well-formed tag starting at or after offset from.
// Tag names are matched exactly, so "<abbr>" is never mistaken for "<a>".
func NextTag(s string, from int) (Tag, bool) {
	for from < len(s) {
		i := strings.IndexByte(s[from:], '<')
		if i < 0 {
			return Tag{}, false
		}
		start := from + i
		if tag, ok := parseTag(s, start); ok {
			return tag, true
		}
		from = start + 1
	}
	return Tag{}, false
}

// parseTag parses the tag beginning at s[start] == '<'.
func parseTag(s string, start int) (Tag, bool) {
	if start >= len(s) || s[start] != '<' {
		return Tag{}, false
	}

	j := start + 1
	closing := false
	if j < len(s) && s[j] == '/' {
		closing = true
		j++
	}

	nameStart := j
	for j < len(s) && isNameByte(s[j], j == nameStart) {
		j++
	}
	if j == nameStart || j >= len(s) {
		return Tag{}, false
	}

	// The name must be terminated by '>', '/' or whitespace.
	if c := s[j]; c != '>' && c != '/' && !isSpaceByte(c) {
		return Tag{}, false
	}

	gt := strings.IndexByte(s[j:], '>')
	if gt < 0 {
		return Tag{}, false
	}
	end := j + gt + 1

	return Tag{
		Name:        strings.ToLower(s[nameStart:j]),
		Closing:     closing,
		SelfClosing: !closing && s[end-2] == '/',
		Start:       start,
		End:         end,
	}, true
}

func isNameByte(c byte, first bool) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
		return true
	}
	return !first && c >= '0' && c <= '9'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// StripTags removes every opening, closing and self-closing tag whose name is
// in set. Content between tags is kept.
func StripTags(s string, set TagSet) string {
	return stripTags(s, set.Has)
}

// StripAllTags removes every tag from s, leaving text content only.
func StripAllTags(s string) string {
	return stripTags(s, func(string) bool { return true })
}

func stripTags(s string, match func(name string) bool) string {
	var b strings.Builder
	last := 0
	for pos := 0; ; {
		tag, ok := NextTag(s, pos)
		if !ok {
			break
		}
		pos = tag.End
		if !match(tag.Name) {
			continue
		}
		if last == 0 {
			b.Grow(len(s))
		}
		b.WriteString(s[last:tag.Start])
		last = tag.End
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// HasTag reports whether s contains any tag whose name is in set.
func HasTag(s string, set TagSet) bool {
	for pos := 0; ; {
		tag, ok := NextTag(s, pos)
		if !ok {
			return false
		}
		if set.Has(tag.Name) {
			return true
		}
		pos = tag.End
	}
}
