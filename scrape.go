package tabtalk

import (
	"context"
	"time"
)

// Scrape is one archived extraction run: the table plus its provenance.
type Scrape struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
	Table       *Table    `json:"-"`
}

// Validate returns an error if the scrape contains invalid fields.
func (s *Scrape) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "scrape source URL required")
	}
	if s.Table == nil {
		return Errorf(EINVALID, "scrape table required")
	}
	return nil
}

// ScrapeService represents a service for managing archived scrapes.
type ScrapeService interface {
	// CreateScrape archives a scrape. The service assigns ID, ContentHash,
	// and FetchedAt.
	CreateScrape(ctx context.Context, scrape *Scrape) error

	// FindScrapeByID retrieves a scrape with its full table.
	// Returns ENOTFOUND if the scrape does not exist.
	FindScrapeByID(ctx context.Context, id string) (*Scrape, error)

	// FindScrapes retrieves scrapes matching the filter, newest first.
	FindScrapes(ctx context.Context, filter ScrapeFilter) ([]*Scrape, error)

	// DeleteScrape permanently removes a scrape and its rows.
	// Returns ENOTFOUND if the scrape does not exist.
	DeleteScrape(ctx context.Context, id string) error
}

// ScrapeFilter represents a filter for FindScrapes.
type ScrapeFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
