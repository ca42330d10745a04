package main

import (
	"fmt"

	"github.com/fwojciec/itinerary"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := itinerary.ExtractionFilter{Limit: c.Limit}
	if c.Type != "" {
		pageType, err := itinerary.ParsePageType(c.Type)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", itinerary.ErrorMessage(err))
			return err
		}
		filter.PageType = &pageType
	}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", itinerary.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'itinerary extract --save' to record one.")
		return nil
	}

	for _, e := range extractions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-6s  %3d days  %s\n",
			e.ID, e.ExtractedAt.Format("2006-01-02 15:04"), e.PageType, e.DayCount, e.URL)
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	e, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", itinerary.ErrorMessage(err))
		return err
	}
	return render(deps, c.Format, e.URL, e.PageType, e.Result)
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Extractions.DeleteExtraction(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", itinerary.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted extraction %s\n", c.ID)
	return nil
}
