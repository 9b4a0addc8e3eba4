package pinnedref

import "strings"

// Tokenize lowercases text, drops question marks and splits it on the
// separator characters used by the search index. Of the whitespace
// characters only spaces and line breaks separate tokens. Empty tokens are
// dropped.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "?", "")
	return strings.FieldsFunc(text, isTokenSeparator)
}

func isTokenSeparator(r rune) bool {
	switch r {
	case ' ', '\n', '\r', ':', '-', '(', ')', '–', '—', '.', '\\', ',', '"', '“', '”', '’', ';', '/':
		return true
	}
	return false
}
