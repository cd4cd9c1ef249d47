package services

import (
	"context"

	"homeinsight-sqft/pkg/scrapeowl"
)

// Completer sends a prompt to a text-completion service.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Scraper fetches a fully rendered page through a scraping service.
type Scraper interface {
	Scrape(ctx context.Context, targetURL string) (*scrapeowl.ScrapeResponse, error)
}
