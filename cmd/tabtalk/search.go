package main

import (
	"fmt"

	"github.com/pkoscik/tabtalk"
)

// Run executes the search command against the archive.
func (c *SearchCmd) Run(deps *Dependencies) error {
	var scrape *tabtalk.Scrape

	switch {
	case c.ID != "":
		s, err := deps.Scrapes.FindScrapeByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'tabtalk list' to see archived scrapes.\n", tabtalk.ErrorMessage(err))
			return err
		}
		scrape = s
	case c.Latest:
		scrapes, err := deps.Scrapes.FindScrapes(deps.Ctx, tabtalk.ScrapeFilter{Limit: 1})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", tabtalk.ErrorMessage(err))
			return err
		}
		if len(scrapes) == 0 {
			fmt.Fprintln(deps.Stderr, "error: no archived scrapes. Use 'tabtalk scrape' to create one.")
			return tabtalk.Errorf(tabtalk.ENOTFOUND, "no archived scrapes")
		}
		scrape = scrapes[0]
	default:
		fmt.Fprintln(deps.Stderr, "error: specify a scrape ID or --latest.")
		return tabtalk.Errorf(tabtalk.EINVALID, "no scrape selected")
	}

	fmt.Fprintf(deps.Stdout, "Searching scrape %s from %s (fetched %s)\n",
		scrape.ID, scrape.SourceURL, scrape.FetchedAt.Format("2006-01-02"))
	printColumns(deps.Stdout, scrape.Table)

	session, err := tabtalk.NewSession(scrape.Table, deps.Notifier, deps.Stdin, deps.Stdout,
		tabtalk.WithEntityColumn(c.EntityColumn))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabtalk.ErrorMessage(err))
		return err
	}
	return session.Run()
}
