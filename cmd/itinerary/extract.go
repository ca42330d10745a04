package main

import (
	"fmt"

	"github.com/fwojciec/itinerary"
	"github.com/fwojciec/itinerary/fs"
	"github.com/fwojciec/itinerary/markdown"
	"github.com/fwojciec/itinerary/scrape"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var files *fs.Writer
	if c.Dir != "" {
		files = fs.NewWriter(c.Dir)
	}

	outcomes := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs)

	var failed int
	var lastErr error
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", o.URL, itinerary.ErrorMessage(o.Err))
			failed++
			lastErr = o.Err
			continue
		}

		fmt.Fprintf(deps.Stderr, "%s information extracted successfully (%d days)\n",
			o.PageType.Title(), len(o.Result.Itinerary))

		if err := c.write(deps, files, o); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", itinerary.ErrorMessage(err))
			return err
		}

		if c.Save {
			e := &itinerary.Extraction{URL: o.URL, PageType: o.PageType, Result: o.Result}
			if err := deps.Extractions.CreateExtraction(deps.Ctx, e); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", itinerary.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stderr, "Saved extraction %s\n", e.ID)
		}
	}

	switch {
	case failed == 0:
		return nil
	case len(outcomes) == 1:
		return lastErr
	default:
		return fmt.Errorf("%d of %d URLs failed", failed, len(outcomes))
	}
}

func (c *ExtractCmd) write(deps *Dependencies, files *fs.Writer, o scrape.Outcome) error {
	if files != nil {
		path, err := files.WriteResult(o.PageType, o.URL, o.Result)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, path)
		return nil
	}
	return render(deps, c.Format, o.URL, o.PageType, o.Result)
}

// render writes result to stdout as JSON or as a Markdown preview.
func render(deps *Dependencies, format, url string, pageType itinerary.PageType, result *itinerary.Result) error {
	if format == "markdown" {
		return markdown.NewWriter(deps.Stdout).WritePreview(url, pageType, result)
	}
	return result.WriteJSON(deps.Stdout)
}
