package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkoscik/tabtalk"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	scrapes, err := deps.Scrapes.FindScrapes(deps.Ctx, tabtalk.ScrapeFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabtalk.ErrorMessage(err))
		return err
	}

	if len(scrapes) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived scrapes. Use 'tabtalk scrape' to create one.")
		return nil
	}

	tw := tablewriter.NewWriter(deps.Stdout)
	tw.Header([]string{"ID", "Source URL", "Columns", "Rows", "Fetched At"})
	for _, s := range scrapes {
		_ = tw.Append([]string{
			s.ID,
			s.SourceURL,
			strconv.Itoa(len(s.Table.Columns())),
			strconv.Itoa(s.Table.Len()),
			s.FetchedAt.Format(time.RFC3339),
		})
	}
	return tw.Render()
}
