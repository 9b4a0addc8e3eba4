package pinnedref

import "fmt"

// DiagnosticKind classifies a non-fatal pipeline problem.
type DiagnosticKind string

// Diagnostic kinds reported by the pipeline.
const (
	DiagMissingJoin        DiagnosticKind = "missing-join"
	DiagMalformedURL       DiagnosticKind = "malformed-url"
	DiagUnmatchedHighlight DiagnosticKind = "unmatched-highlight"
	DiagEmptyExtraction    DiagnosticKind = "empty-extraction"
	DiagNoHighlights       DiagnosticKind = "no-highlights"
	DiagFetchFailed        DiagnosticKind = "fetch-failed"
	DiagDuplicateArticle   DiagnosticKind = "duplicate-article"
)

// Diagnostic describes a recovered problem with one article.
type Diagnostic struct {
	Kind       DiagnosticKind `json:"kind"`
	BookmarkID int64          `json:"bookmark_id"`
	Message    string         `json:"message"`
}

// Diagnostics collects diagnostics in the order they were reported.
// It is not safe for concurrent use; concurrent stages collect separately
// and Merge.
type Diagnostics struct {
	items []Diagnostic
}

// Add records a diagnostic.
func (d *Diagnostics) Add(kind DiagnosticKind, bookmarkID int64, format string, args ...any) {
	if d == nil {
		return
	}
	d.items = append(d.items, Diagnostic{
		Kind:       kind,
		BookmarkID: bookmarkID,
		Message:    fmt.Sprintf(format, args...),
	})
}

// Merge appends all diagnostics from other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}
	d.items = append(d.items, other.items...)
}

// All returns the recorded diagnostics.
func (d *Diagnostics) All() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.items
}

// ByKind returns the diagnostics of the given kind.
func (d *Diagnostics) ByKind(kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.All() {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of recorded diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.All())
}
