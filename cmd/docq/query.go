package main

import (
	"fmt"

	"github.com/fwojciec/docq"
	"github.com/fwojciec/docq/fs"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	var filter *docq.LineFilter
	if c.Filter != "" {
		f, err := docq.NewLineFilter(c.Filter)
		if err != nil {
			return report(deps, err)
		}
		filter = f
	}

	if docq.IsCrateListing(c.Query) {
		return report(deps, listCrates(deps))
	}

	q := docq.ParseQuery(c.Query)
	root, err := deps.Roots.FindRoot(deps.Ctx, q.IsStdlib)
	if err != nil {
		return report(deps, err)
	}

	tp, err := deps.Locator.Resolve(deps.Ctx, q, root)
	if err != nil {
		return report(deps, err)
	}

	if c.Open {
		return report(deps, deps.Browser.Open(tp.FullPath))
	}

	sections, err := deps.Extractor.Extract(deps.Ctx, tp, docq.ExtractOptions{
		Filter:           filter,
		ChildModulesOnly: c.List,
		Examples:         c.Examples,
		Markdown:         c.Markdown,
	})
	if err != nil {
		return report(deps, err)
	}

	fmt.Fprintln(deps.Stdout, docq.JoinSections(sections))
	return nil
}

// listCrates prints the crates documented in the standard library tree and
// in the current crate's tree. A tree that cannot be found is skipped unless
// neither can.
func listCrates(deps *Dependencies) error {
	groups := []struct {
		title  string
		stdlib bool
	}{
		{"std", true},
		{"local", false},
	}

	var listed int
	var firstErr error
	for _, g := range groups {
		root, err := deps.Roots.FindRoot(deps.Ctx, g.stdlib)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		crates, err := fs.ListCrates(root)
		if err != nil {
			return err
		}
		if listed > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, deps.Styler.Heading(docq.HeadingCrates, g.title))
		if len(crates) > 0 {
			fmt.Fprintln(deps.Stdout, docq.FormatColumns(crates, deps.Width))
		}
		listed++
	}

	if listed == 0 {
		return firstErr
	}
	return nil
}

// report writes err to stderr and returns it. A nil err is passed through.
func report(deps *Dependencies, err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", docq.ErrorMessage(err))
	return err
}
