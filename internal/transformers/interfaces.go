package transformers

import (
	"homeinsight-sqft/internal/models"
	"homeinsight-sqft/pkg/scrapeowl"
)

type PropertyTransformer interface {
	TransformScrapeResult(res *scrapeowl.ScrapeResponse) (*models.SquareFootageResponse, error)
	TransformManualValue(sqft float64) *models.SquareFootageResponse
}

type AddressTransformer interface {
	CleanupPrompt(address string) string
	ListingURL(address string) string
}

// SquareFootageExtractor finds a square footage figure in listing markup.
type SquareFootageExtractor interface {
	Extract(html string) (int, bool)
}
