// Package slog provides logging decorators for docq services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docq"
)

// Ensure the decorators implement their interfaces.
var (
	_ docq.Locator    = (*LoggingLocator)(nil)
	_ docq.RootFinder = (*LoggingRootFinder)(nil)
	_ docq.Browser    = (*LoggingBrowser)(nil)
)

// LoggingLocator wraps a Locator with debug logging.
type LoggingLocator struct {
	next   docq.Locator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next docq.Locator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Resolve delegates to the wrapped locator and logs the resolved path.
func (l *LoggingLocator) Resolve(ctx context.Context, q docq.Query, root string) (tp *docq.TaggedPath, err error) {
	defer func(begin time.Time) {
		attrs := []any{"query", q.Raw, "root", root}
		if tp != nil {
			attrs = append(attrs, "path", tp.FullPath, "tag", tp.ExtractionTag().String())
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		l.logger.Info("resolve", attrs...)
	}(time.Now())
	return l.next.Resolve(ctx, q, root)
}

// LoggingRootFinder wraps a RootFinder with debug logging.
type LoggingRootFinder struct {
	next   docq.RootFinder
	logger *slog.Logger
}

// NewLoggingRootFinder creates a new LoggingRootFinder.
func NewLoggingRootFinder(next docq.RootFinder, logger *slog.Logger) *LoggingRootFinder {
	return &LoggingRootFinder{next: next, logger: logger}
}

// FindRoot delegates to the wrapped finder and logs the root it found.
func (f *LoggingRootFinder) FindRoot(ctx context.Context, stdlib bool) (root string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("find root",
			"stdlib", stdlib,
			"root", root,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FindRoot(ctx, stdlib)
}

// LoggingBrowser wraps a Browser with debug logging.
type LoggingBrowser struct {
	next   docq.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next docq.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Open delegates to the wrapped browser and logs the page opened.
func (b *LoggingBrowser) Open(path string) (err error) {
	defer func(begin time.Time) {
		b.logger.Info("open",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Open(path)
}
