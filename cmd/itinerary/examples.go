package main

import "fmt"

var (
	exampleCruiseURLs = []string{
		"https://cruises.flightcentre.com.au/cruises/indonesian-explorer-pacific-encounter-2026-02-03-2/",
		"https://cruises.flightcentre.co.uk/cruises/great-stirrup-cay-nassau-from-miami-florida-norwegian-gem-2025-06-30/?occupancy=2-0-0-0-0",
		"https://cruises.flightcentre.co.za/cruises/south-africa-from-durban-msc-opera-2026-01-16/",
	}
	exampleTourURLs = []string{
		"https://tours.flightcentre.com.au/t/1842",
		"https://tours.flightcentre.co.nz/t/5578",
		"https://tours.flightcentre.ca/t/237183",
	}
)

// Run executes the examples command.
func (c *ExamplesCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Cruise examples:")
	for _, u := range exampleCruiseURLs {
		fmt.Fprintf(deps.Stdout, "  %s\n", u)
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Tour examples:")
	for _, u := range exampleTourURLs {
		fmt.Fprintf(deps.Stdout, "  %s\n", u)
	}
	return nil
}
