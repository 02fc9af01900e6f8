// Package rod opens documentation pages in a locally installed browser.
package rod

import (
	"net/url"
	"os/exec"
	"path/filepath"

	"github.com/fwojciec/docq"
	"github.com/go-rod/rod/lib/launcher"
)

// Ensure Browser implements docq.Browser at compile time.
var _ docq.Browser = (*Browser)(nil)

// Browser opens pages with the Chromium-family browser the rod launcher
// discovers on the machine.
type Browser struct {
	lookPath func() (string, bool)
	start    func(bin, target string) error
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithBin opens pages with the browser binary at bin instead of searching
// for one.
func WithBin(bin string) BrowserOption {
	return func(b *Browser) {
		b.lookPath = func() (string, bool) { return bin, bin != "" }
	}
}

// WithStarter replaces the function that spawns the browser process.
func WithStarter(start func(bin, target string) error) BrowserOption {
	return func(b *Browser) {
		b.start = start
	}
}

// NewBrowser creates a new Browser.
func NewBrowser(opts ...BrowserOption) *Browser {
	b := &Browser{
		lookPath: launcher.LookPath,
		start:    startDetached,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open implements docq.Browser.
// Returns EUNAVAILABLE if no browser is installed or it fails to start.
func (b *Browser) Open(path string) error {
	bin, ok := b.lookPath()
	if !ok {
		return docq.Errorf(docq.EUNAVAILABLE, "no browser found to open %q", path)
	}

	target, err := FileURL(path)
	if err != nil {
		return err
	}

	if err := b.start(bin, target); err != nil {
		return docq.Errorf(docq.EUNAVAILABLE, "unable to start browser %q: %v", bin, err)
	}
	return nil
}

// FileURL returns the file:// URL of path, made absolute first.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", docq.Errorf(docq.EINVALID, "invalid path %q: %v", path, err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// startDetached launches the browser and leaves it running after docq exits.
func startDetached(bin, target string) error {
	cmd := exec.Command(bin, target)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
