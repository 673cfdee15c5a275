package main

import (
	"fmt"

	"github.com/pkoscik/tabtalk"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Scrapes.DeleteScrape(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'tabtalk list' to see archived scrapes.\n", tabtalk.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted scrape %s\n", c.ID)
	return nil
}
