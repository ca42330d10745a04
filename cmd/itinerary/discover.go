package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/itinerary"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	filter := &itinerary.URLFilter{
		PageTypes: []itinerary.PageType{itinerary.PageTypeCruise, itinerary.PageTypeTour},
	}

	if c.Type != "" {
		pageType, err := itinerary.ParsePageType(c.Type)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", itinerary.ErrorMessage(err))
			return err
		}
		filter.PageTypes = []itinerary.PageType{pageType}
	}

	var err error
	if filter.Include, err = compilePatterns(c.Filter); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if filter.Exclude, err = compilePatterns(c.Exclude); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Site, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", itinerary.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "No cruise or tour URLs found.")
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	var res []*regexp.Regexp
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, itinerary.Errorf(itinerary.EINVALID, "invalid filter pattern %q: %v", pattern, err)
		}
		res = append(res, re)
	}
	return res, nil
}
