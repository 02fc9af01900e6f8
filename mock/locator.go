package mock

import (
	"context"

	"github.com/fwojciec/docq"
)

var (
	_ docq.Locator    = (*Locator)(nil)
	_ docq.RootFinder = (*RootFinder)(nil)
	_ docq.Browser    = (*Browser)(nil)
)

// Locator is a mock implementation of docq.Locator.
type Locator struct {
	ResolveFn func(ctx context.Context, q docq.Query, root string) (*docq.TaggedPath, error)
}

func (l *Locator) Resolve(ctx context.Context, q docq.Query, root string) (*docq.TaggedPath, error) {
	return l.ResolveFn(ctx, q, root)
}

// RootFinder is a mock implementation of docq.RootFinder.
type RootFinder struct {
	FindRootFn func(ctx context.Context, stdlib bool) (string, error)
}

func (f *RootFinder) FindRoot(ctx context.Context, stdlib bool) (string, error) {
	return f.FindRootFn(ctx, stdlib)
}

// Browser is a mock implementation of docq.Browser.
type Browser struct {
	OpenFn func(path string) error
}

func (b *Browser) Open(path string) error {
	return b.OpenFn(path)
}
