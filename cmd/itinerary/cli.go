package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/itinerary"
	"github.com/fwojciec/itinerary/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Scraper     *scrape.Scraper
	Extractions itinerary.ExtractionService
	Sitemaps    itinerary.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and extractions to stderr"`

	Extract  ExtractCmd  `cmd:"" help:"Extract itineraries from cruise or tour URLs"`
	Classify ClassifyCmd `cmd:"" help:"Show the page type of each URL"`
	Discover DiscoverCmd `cmd:"" help:"List cruise and tour URLs from a site's sitemaps"`
	History  HistoryCmd  `cmd:"" help:"List saved extractions"`
	Show     ShowCmd     `cmd:"" help:"Print a saved extraction"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a saved extraction"`
	Examples ExamplesCmd `cmd:"" help:"Print example cruise and tour URLs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Flight Centre cruise or tour URL"`
	Dir         string        `short:"d" help:"Write each result as a JSON file into this directory"`
	Format      string        `short:"f" enum:"json,markdown" default:"json" help:"Output format (json, markdown)"`
	Save        bool          `short:"s" help:"Record results in the extraction history"`
	Browser     bool          `short:"b" help:"Render pages with headless Chrome"`
	Polite      bool          `default:"true" negatable:"" help:"Rate limit requests per host and check robots.txt"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent fetch limit"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	URLs []string `arg:"" name:"url" help:"URL to classify"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	Site    string   `arg:"" help:"Site URL, e.g. https://tours.flightcentre.com.au"`
	Filter  []string `short:"F" name:"filter" help:"Keep URLs matching regex (repeatable)"`
	Exclude []string `short:"x" help:"Drop URLs matching regex (repeatable)"`
	Type    string   `short:"T" help:"Only cruise or only tour URLs"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Type  string `short:"T" help:"Only cruise or only tour extractions"`
	URL   string `short:"u" help:"Only extractions of this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of extractions to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Extraction ID"`
	Format string `short:"f" enum:"json,markdown" default:"json" help:"Output format (json, markdown)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

// ExamplesCmd is the "examples" subcommand.
type ExamplesCmd struct{}
