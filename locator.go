package docq

import "context"

// Locator resolves queries to documentation files.
type Locator interface {
	// Resolve finds the file documenting q beneath root.
	// Returns EUNAVAILABLE if root cannot be read, EINVALID if q has no
	// components to resolve and ENOTFOUND if no file matches.
	Resolve(ctx context.Context, q Query, root string) (*TaggedPath, error)
}

// RootFinder discovers documentation trees on the local machine.
type RootFinder interface {
	// FindRoot returns the base directory of the standard library docs when
	// stdlib is true, and of the current crate's docs otherwise.
	// Returns EUNAVAILABLE if the tree cannot be located.
	FindRoot(ctx context.Context, stdlib bool) (string, error)
}

// Browser shows documentation pages in a web browser.
type Browser interface {
	// Open displays the file at path.
	Open(path string) error
}
