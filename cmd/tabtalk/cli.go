package main

import (
	"context"
	"io"
	"time"

	"github.com/pkoscik/tabtalk"
	"github.com/pkoscik/tabtalk/fs"
)

// DefaultURL is the page scraped when no --url is given.
const DefaultURL = "https://en.wikipedia.org/wiki/List_of_countries_by_number_of_military_and_paramilitary_personnel"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Fetcher   tabtalk.Fetcher
	Extractor tabtalk.TableExtractor
	Scrapes   tabtalk.ScrapeService
	Notifier  tabtalk.Notifier
	Snapshots *fs.SnapshotStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Fetch a page, extract its table, and search it interactively"`
	Search SearchCmd `cmd:"" help:"Search a previously archived scrape"`
	List   ListCmd   `cmd:"" help:"List archived scrapes"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived scrape"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL          string        `default:"${default_url}" help:"Page to fetch"`
	UserAgent    string        `default:"tabtalk/1.0 (custom data scraper)" help:"User-Agent header sent with the request"`
	Timeout      time.Duration `default:"10s" help:"HTTP request timeout"`
	TableClass   string        `default:"wikitable" help:"Class marker of the table to extract"`
	CSV          string        `default:"military_personnel_data.csv" help:"CSV export path"`
	XLSX         string        `default:"military_personnel_data.xlsx" help:"XLSX export path"`
	EntityColumn int           `default:"0" help:"Index of the searchable entity column"`
	Mute         bool          `help:"Disable speech output"`
	SnapshotDir  string        `help:"Directory for raw HTML snapshots"`
	NoArchive    bool          `help:"Skip the SQLite scrape archive"`
	Verbose      bool          `short:"v" help:"Log fetch and extraction details"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	ID           string `arg:"" optional:"" help:"Scrape ID to search"`
	Latest       bool   `help:"Search the most recently archived scrape"`
	EntityColumn int    `default:"0" help:"Index of the searchable entity column"`
	Mute         bool   `help:"Disable speech output"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Scrape ID"`
}
