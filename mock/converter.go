package mock

import "github.com/fwojciec/docq"

var _ docq.Converter = (*Converter)(nil)

// Converter is a mock implementation of docq.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
