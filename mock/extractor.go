package mock

import "github.com/fwojciec/pinnedref"

var _ pinnedref.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pinnedref.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pinnedref.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pinnedref.ExtractResult, error) {
	return e.ExtractFn(html)
}
