// Package fs resolves documentation queries against rustdoc output on disk.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/docq"
)

// Ensure Locator implements docq.Locator at compile time.
var _ docq.Locator = (*Locator)(nil)

// Locator implements docq.Locator by walking a rustdoc output tree.
//
// Directories are modules, prefixed files (struct.File.html) are items and
// methods are anchors inside an item's page. A query is resolved by first
// trying the module page of the full path and then searching for the item
// file from the deepest directory back up to the root.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Resolve implements docq.Locator.
func (l *Locator) Resolve(ctx context.Context, q docq.Query, root string) (*docq.TaggedPath, error) {
	if !isDir(root) {
		return nil, docq.Errorf(docq.EUNAVAILABLE, "cannot read documentation root %q", root)
	}

	components := q.Components
	var method string
	if q.IsMethod && len(components) > 0 {
		method = components[len(components)-1]
		components = components[:len(components)-1]
	}
	if len(components) == 0 {
		return nil, docq.Errorf(docq.EINVALID, "query %q does not name an item", q.Raw)
	}

	symbol := components[len(components)-1]
	candidate := filepath.Join(append([]string{root}, components[:len(components)-1]...)...)

	tp, err := l.find(ctx, root, candidate, symbol)
	if err != nil {
		return nil, err
	}
	if tp == nil {
		return nil, docq.Errorf(docq.ENOTFOUND, "unable to resolve query path %q", q.Raw)
	}
	tp.MethodName = method
	return tp, nil
}

func (l *Locator) find(ctx context.Context, root, candidate, symbol string) (*docq.TaggedPath, error) {
	if dir := filepath.Join(candidate, symbol); isDir(dir) {
		return docq.NewTaggedPath(filepath.Join(dir, docq.ModuleIndex))
	}

	for _, dir := range ancestors(root, candidate) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tp, err := matchChild(dir, symbol)
		if err != nil {
			return nil, err
		}
		if tp != nil {
			return tp, nil
		}

		// The level itself may be the module being asked for.
		if dir != root && filepath.Base(dir) == symbol {
			return docq.NewTaggedPath(filepath.Join(dir, docq.ModuleIndex))
		}
	}

	return nil, nil
}

// matchChild returns the prefixed file in dir whose identifier is symbol.
// A directory that cannot be read contributes no match.
func matchChild(dir, symbol string) (*docq.TaggedPath, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}

	for _, entry := range entries {
		name := entry.Name()
		if !utf8.ValidString(name) {
			return nil, docq.Errorf(docq.EINVALID, "file name in %q is not valid UTF-8: %q", dir, name)
		}
		if entry.IsDir() || !docq.Classify(name).IsPrefixed() {
			continue
		}

		tp, err := docq.NewTaggedPath(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if *tp.WithoutPrefix == symbol {
			return tp, nil
		}
	}

	return nil, nil
}

// ancestors returns candidate and each of its parents down to and including
// root, deepest first. A candidate outside root yields only root.
func ancestors(root, candidate string) []string {
	rel, err := filepath.Rel(root, candidate)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return []string{root}
	}

	parts := strings.Split(rel, string(filepath.Separator))
	dirs := make([]string, 0, len(parts)+1)
	for i := len(parts); i >= 0; i-- {
		dirs = append(dirs, filepath.Join(append([]string{root}, parts[:i]...)...))
	}
	return dirs
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
