package fs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docq"
)

// Ensure RootFinder implements docq.RootFinder at compile time.
var _ docq.RootFinder = (*RootFinder)(nil)

// ManifestFile marks the root of a crate.
const ManifestFile = "Cargo.toml"

// RootFinder locates the standard library docs shipped with the toolchain
// and the docs built for the crate around the working directory.
type RootFinder struct {
	// StdRoot, when set, is used instead of the toolchain's doc tree.
	StdRoot string

	// WorkDir is where the search for the crate manifest starts.
	// Defaults to the process working directory.
	WorkDir string

	// Sysroot returns the toolchain sysroot.
	// Defaults to running "rustc --print sysroot".
	Sysroot func(ctx context.Context) (string, error)
}

// NewRootFinder creates a RootFinder with default discovery.
func NewRootFinder() *RootFinder {
	return &RootFinder{}
}

// FindRoot implements docq.RootFinder.
func (f *RootFinder) FindRoot(ctx context.Context, stdlib bool) (string, error) {
	if stdlib {
		return f.stdRoot(ctx)
	}
	return f.crateRoot()
}

func (f *RootFinder) stdRoot(ctx context.Context) (string, error) {
	if f.StdRoot != "" {
		if !isDir(f.StdRoot) {
			return "", docq.Errorf(docq.EUNAVAILABLE, "cannot locate documentation root: %q is not a directory", f.StdRoot)
		}
		return f.StdRoot, nil
	}

	sysroot := f.Sysroot
	if sysroot == nil {
		sysroot = rustcSysroot
	}
	dir, err := sysroot(ctx)
	if err != nil {
		return "", docq.Errorf(docq.EUNAVAILABLE, "cannot locate documentation root: %v", err)
	}

	root := filepath.Join(dir, "share", "doc", "rust", "html")
	if !isDir(root) {
		return "", docq.Errorf(docq.EUNAVAILABLE, "cannot locate documentation root: %q not found (is the rust-docs component installed?)", root)
	}
	return root, nil
}

func (f *RootFinder) crateRoot() (string, error) {
	dir := f.WorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", docq.Errorf(docq.EUNAVAILABLE, "cannot locate documentation root: %v", err)
		}
		dir = wd
	}

	for {
		if isFile(filepath.Join(dir, ManifestFile)) {
			root := filepath.Join(dir, "target", "doc")
			if !isDir(root) {
				return "", docq.Errorf(docq.EUNAVAILABLE, "cannot locate documentation root: %q not found (run cargo doc)", root)
			}
			return root, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", docq.Errorf(docq.EUNAVAILABLE, "cannot locate documentation root: no %s found above the working directory", ManifestFile)
}

func rustcSysroot(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "rustc", "--print", "sysroot").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ListCrates returns the names of the crates documented under root, sorted.
// A crate is a child directory holding an index.html page.
func ListCrates(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, docq.Errorf(docq.EUNAVAILABLE, "cannot read documentation root %q: %v", root, err)
	}

	var crates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if isFile(filepath.Join(root, entry.Name(), docq.ModuleIndex)) {
			crates = append(crates, entry.Name())
		}
	}
	return crates, nil
}
