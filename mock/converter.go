package mock

import "github.com/fwojciec/pinnedref"

var _ pinnedref.Converter = (*Converter)(nil)

// Converter is a mock implementation of pinnedref.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
