package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/itinerary"
	"github.com/fwojciec/itinerary/goquery"
	ithttp "github.com/fwojciec/itinerary/http"
	"github.com/fwojciec/itinerary/rod"
	"github.com/fwojciec/itinerary/scrape"
	itslog "github.com/fwojciec/itinerary/slog"
	"github.com/fwojciec/itinerary/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the history commands.
	DB *sqlite.DB

	// Services for end-to-end testing. When set they replace the
	// network and database implementations.
	Fetcher     itinerary.Fetcher
	Extractions itinerary.ExtractionService
	Sitemaps    itinerary.SitemapService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("itinerary"),
		kong.Description("Extract day-by-day itineraries from Flight Centre cruise and tour pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'itinerary --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	needsHistory := cmd == "history" || cmd == "show" || cmd == "delete" ||
		(cmd == "extract" && cli.Extract.Save)
	if needsHistory {
		if err := m.openHistory(stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.Extractions = m.Extractions
	}

	switch cmd {
	case "extract":
		fetcher, err := m.fetcher(&cli.Extract, logger, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Scraper = &scrape.Scraper{
			Fetcher:     fetcher,
			Extractor:   itslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
			Concurrency: cli.Extract.Concurrency,
		}
	case "discover":
		sitemaps := m.Sitemaps
		if sitemaps == nil {
			sitemaps = ithttp.NewSitemapService(nil)
		}
		deps.Sitemaps = itslog.NewLoggingSitemapService(sitemaps, logger)
	}

	return kongCtx.Run(deps)
}

func (m *Main) openHistory(stderr io.Writer) error {
	if m.Extractions != nil {
		return nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ITINERARY_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	m.Extractions = sqlite.NewExtractionService(m.DB)
	return nil
}

// fetcher builds the page source for the extract command: a plain HTTP
// client or headless Chrome, with retries and per-host politeness.
func (m *Main) fetcher(c *ExtractCmd, logger *slog.Logger, stderr io.Writer) (itinerary.Fetcher, error) {
	if m.Fetcher != nil {
		return itslog.NewLoggingFetcher(m.Fetcher, logger), nil
	}

	var base itinerary.Fetcher
	if c.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		base = f
	} else {
		base = ithttp.NewFetcher(ithttp.WithTimeout(c.Timeout))
	}

	var f itinerary.Fetcher = itslog.NewLoggingFetcher(base, logger)
	f = scrape.NewRetryFetcher(f, scrape.WithRetryLogger(logger))
	if c.Polite {
		f = scrape.NewPoliteFetcher(f, scrape.NewHostLimiter(scrape.DefaultHostInterval),
			scrape.WithRobots(ithttp.NewRobotsChecker(nil)),
			scrape.WithPoliteLogger(logger),
		)
	}
	return f, nil
}

func defaultDBPath() string {
	if path := os.Getenv("ITINERARY_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "itinerary.db"
	}
	dir := filepath.Join(home, ".itinerary")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "itinerary.db")
}
