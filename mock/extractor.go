package mock

import (
	"context"

	"github.com/fwojciec/docq"
)

var _ docq.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docq.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, tp *docq.TaggedPath, opts docq.ExtractOptions) ([]docq.Section, error)
}

func (e *Extractor) Extract(ctx context.Context, tp *docq.TaggedPath, opts docq.ExtractOptions) ([]docq.Section, error) {
	return e.ExtractFn(ctx, tp, opts)
}
