package validators

import (
	"homeinsight-sqft/internal/models"
)

type AddressValidator interface {
	ValidateCleanup(req *models.AddressCleanupRequest) error
}

type SquareFootageValidator interface {
	ValidateLookup(req *models.SquareFootageRequest) error
	ParseManualSquareFootage(raw models.NumericText) (float64, error)
}
