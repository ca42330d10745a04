package main

import (
	"fmt"

	"github.com/fwojciec/itinerary"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	for _, u := range c.URLs {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", itinerary.Classify(u), u)
	}
	return nil
}
