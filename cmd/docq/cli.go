package main

import (
	"context"
	"io"

	"github.com/fwojciec/docq"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Roots     docq.RootFinder
	Locator   docq.Locator
	Extractor docq.Extractor
	Browser   docq.Browser
	Styler    docq.Styler

	// Width is the maximum rendered line width.
	Width int
}

// QueryCmd looks up a documentation query and prints it.
type QueryCmd struct {
	Query    string
	List     bool
	Open     bool
	Filter   string
	Examples bool
	Markdown bool
}
