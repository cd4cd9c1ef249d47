package transformers

import (
	"errors"

	"homeinsight-sqft/internal/models"
	"homeinsight-sqft/pkg/scrapeowl"
)

// ErrSquareFootageNotFound means the page was fetched but held no recognisable figure.
var ErrSquareFootageNotFound = errors.New("square footage not found in page markup")

type propertyTransformer struct {
	extractor SquareFootageExtractor
}

func NewPropertyTransformer(extractor SquareFootageExtractor) PropertyTransformer {
	if extractor == nil {
		extractor = NewPatternExtractor()
	}
	return &propertyTransformer{extractor: extractor}
}

// TransformScrapeResult turns a scrape into a response that still needs user confirmation.
func (t *propertyTransformer) TransformScrapeResult(res *scrapeowl.ScrapeResponse) (*models.SquareFootageResponse, error) {
	if res == nil || res.Body() == "" {
		return nil, scrapeowl.ErrNoContent
	}

	sqft, ok := t.extractor.Extract(res.Body())
	if !ok {
		return nil, ErrSquareFootageNotFound
	}

	var resolved *string
	if res.ResolvedURL != "" {
		u := res.ResolvedURL
		resolved = &u
	}

	return &models.SquareFootageResponse{
		SquareFootage:      float64(sqft),
		ResolvedAddress:    resolved,
		ConfirmationNeeded: true,
	}, nil
}

// TransformManualValue wraps a user-supplied value; it is trusted as entered.
func (t *propertyTransformer) TransformManualValue(sqft float64) *models.SquareFootageResponse {
	return &models.SquareFootageResponse{
		SquareFootage:      sqft,
		ResolvedAddress:    nil,
		ConfirmationNeeded: false,
	}
}
