package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docq"
	"github.com/fwojciec/docq/color"
	"github.com/fwojciec/docq/fs"
	"github.com/fwojciec/docq/goquery"
	"github.com/fwojciec/docq/htmltomarkdown"
	"github.com/fwojciec/docq/rod"
	docqslog "github.com/fwojciec/docq/slog"
	"golang.org/x/term"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Application errors have already been reported by the command.
		var appErr *docq.Error
		if !errors.As(err, &appErr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Nil fields get the default
	// implementation when Run is called.
	Roots   docq.RootFinder
	Locator docq.Locator
	Browser docq.Browser
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docq"),
		kong.Description("Query locally built Rust documentation from the terminal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no query specified. Run 'docq --help' for usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	terminal, width := terminalInfo(stdout)
	if cli.Width > 0 {
		width = cli.Width
	}
	styler := color.NewStyler(terminal && !cli.NoColor && os.Getenv("NO_COLOR") == "")

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Styler: styler,
		Width:  width,
	}

	deps.Roots = m.Roots
	if deps.Roots == nil {
		deps.Roots = &fs.RootFinder{StdRoot: cli.StdRoot}
	}
	deps.Locator = m.Locator
	if deps.Locator == nil {
		deps.Locator = fs.NewLocator()
	}
	deps.Browser = m.Browser
	if deps.Browser == nil {
		deps.Browser = rod.NewBrowser()
	}
	deps.Extractor = goquery.NewExtractor(
		goquery.WithStyler(styler),
		goquery.WithConverter(htmltomarkdown.NewConverter()),
		goquery.WithMaxWidth(width),
	)

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Roots = docqslog.NewLoggingRootFinder(deps.Roots, logger)
		deps.Locator = docqslog.NewLoggingLocator(deps.Locator, logger)
		deps.Extractor = docqslog.NewLoggingExtractor(deps.Extractor, logger)
		deps.Browser = docqslog.NewLoggingBrowser(deps.Browser, logger)
	}

	cmd := &QueryCmd{
		Query:    cli.Query,
		List:     cli.List,
		Open:     cli.Open,
		Filter:   cli.Filter,
		Examples: cli.Examples,
		Markdown: cli.Markdown,
	}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	List     bool   `short:"l" help:"List the child modules of the resolved module"`
	Open     bool   `short:"o" help:"Open the resolved page in a browser instead of printing it"`
	Filter   string `short:"s" placeholder:"PATTERN" help:"Only show methods, variants and table rows matching a substring or regular expression"`
	Examples bool   `short:"e" help:"Show example code from the documentation"`
	Markdown bool   `short:"m" help:"Render method documentation as Markdown"`
	Width    int    `short:"w" env:"DOCQ_WIDTH" help:"Maximum output width (default: terminal width)"`
	NoColor  bool   `help:"Disable colored headings"`
	Verbose  bool   `short:"v" help:"Log lookups to stderr"`
	StdRoot  string `type:"path" env:"DOCQ_STD_ROOT" help:"Standard library documentation directory (default: from rustc sysroot)"`
	Query    string `arg:"" help:"<crate>[::<module>...][::<item>[.<method>]], or '.' to list crates"`
}

// terminalInfo reports whether w is a terminal and the width to render
// within.
func terminalInfo(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok {
		return false, docq.DefaultMaxWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, docq.DefaultMaxWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return true, docq.DefaultMaxWidth
	}
	return true, width
}
