package mock

import "github.com/fwojciec/gitbooktext"

var _ gitbooktext.Converter = (*Converter)(nil)

// Converter is a mock implementation of gitbooktext.Converter.
type Converter struct {
	ConvertFn func(markdown string) (string, error)
}

func (c *Converter) Convert(markdown string) (string, error) {
	return c.ConvertFn(markdown)
}
