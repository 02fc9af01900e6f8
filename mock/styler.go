package mock

import "github.com/fwojciec/docq"

var _ docq.Styler = (*Styler)(nil)

// Styler is a mock implementation of docq.Styler.
type Styler struct {
	HeadingFn func(kind docq.HeadingKind, title string) string
}

func (s *Styler) Heading(kind docq.HeadingKind, title string) string {
	return s.HeadingFn(kind, title)
}
