package mock

import (
	"context"

	"github.com/pkoscik/tabtalk"
)

var _ tabtalk.ScrapeService = (*ScrapeService)(nil)

// ScrapeService is a mock implementation of tabtalk.ScrapeService.
type ScrapeService struct {
	CreateScrapeFn   func(ctx context.Context, scrape *tabtalk.Scrape) error
	FindScrapeByIDFn func(ctx context.Context, id string) (*tabtalk.Scrape, error)
	FindScrapesFn    func(ctx context.Context, filter tabtalk.ScrapeFilter) ([]*tabtalk.Scrape, error)
	DeleteScrapeFn   func(ctx context.Context, id string) error
}

func (s *ScrapeService) CreateScrape(ctx context.Context, scrape *tabtalk.Scrape) error {
	return s.CreateScrapeFn(ctx, scrape)
}

func (s *ScrapeService) FindScrapeByID(ctx context.Context, id string) (*tabtalk.Scrape, error) {
	return s.FindScrapeByIDFn(ctx, id)
}

func (s *ScrapeService) FindScrapes(ctx context.Context, filter tabtalk.ScrapeFilter) ([]*tabtalk.Scrape, error) {
	return s.FindScrapesFn(ctx, filter)
}

func (s *ScrapeService) DeleteScrape(ctx context.Context, id string) error {
	return s.DeleteScrapeFn(ctx, id)
}
