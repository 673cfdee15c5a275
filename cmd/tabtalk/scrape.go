package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkoscik/tabtalk"
	tabexcel "github.com/pkoscik/tabtalk/excelize"
	"github.com/pkoscik/tabtalk/fs"
)

// Run executes the scrape command: fetch, extract, export, archive, then
// hand control to the interactive search loop.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	deps.Notifier.Notify(fmt.Sprintf("Starting data fetch from %s...", c.URL))

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: could not fetch %s: %v\n", c.URL, err)
		return err
	}

	if deps.Snapshots != nil {
		if path, err := deps.Snapshots.Save(deps.Ctx, html); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not save snapshot: %v\n", err)
		} else {
			fmt.Fprintf(deps.Stdout, "Snapshot saved to %s\n", path)
		}
	}

	table, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabtalk.ErrorMessage(err))
		return err
	}

	printColumns(deps.Stdout, table)

	// Export failures are warnings: the in-memory table is still searchable.
	failed := 0
	for _, export := range []struct {
		path   string
		writer tabtalk.TableWriter
	}{
		{c.CSV, fs.NewCSVWriter(c.CSV)},
		{c.XLSX, tabexcel.NewWriter(c.XLSX)},
	} {
		if err := export.writer.WriteTable(deps.Ctx, table); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not save %s: %v\n", export.path, err)
			failed++
		}
	}
	if failed == 0 {
		deps.Notifier.Notify("Data successfully structured and saved as CSV and Excel files.")
	}

	if deps.Scrapes != nil && !c.NoArchive {
		scrape := &tabtalk.Scrape{SourceURL: c.URL, Table: table}
		if err := deps.Scrapes.CreateScrape(deps.Ctx, scrape); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not archive scrape: %v\n", err)
		} else {
			fmt.Fprintf(deps.Stdout, "Archived scrape %s\n", scrape.ID)
		}
	}

	session, err := tabtalk.NewSession(table, deps.Notifier, deps.Stdin, deps.Stdout,
		tabtalk.WithEntityColumn(c.EntityColumn))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabtalk.ErrorMessage(err))
		return err
	}
	return session.Run()
}

// printColumns enumerates the extracted column names for operator
// visibility.
func printColumns(w io.Writer, table *tabtalk.Table) {
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintln(w, "Scraped data columns:")
	for i, col := range table.Columns() {
		fmt.Fprintf(w, "  %d. %q\n", i+1, col)
	}
	fmt.Fprintln(w, strings.Repeat("=", 40))
}
