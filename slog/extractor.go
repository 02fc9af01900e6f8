package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docq"
)

// Ensure LoggingExtractor implements docq.Extractor.
var _ docq.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   docq.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docq.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the sections produced.
func (e *LoggingExtractor) Extract(ctx context.Context, tp *docq.TaggedPath, opts docq.ExtractOptions) (sections []docq.Section, err error) {
	defer func(begin time.Time) {
		names := make([]string, 0, len(sections))
		for _, s := range sections {
			names = append(names, s.Name)
		}
		e.logger.Info("extract",
			"path", tp.FullPath,
			"tag", tp.ExtractionTag().String(),
			"filter", opts.Filter.Pattern(),
			"sections", names,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, tp, opts)
}
