// Package pinnedref turns a read-it-later archive (bookmarks, highlights and
// raw article bodies) into highlight cards, a two-column summary fragment and
// a token search index.
//
// This package contains domain types, interfaces and the pure extraction
// algorithms following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g. sqlite/,
// trafilatura/, htmltomarkdown/).
package pinnedref
