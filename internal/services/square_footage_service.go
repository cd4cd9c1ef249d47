package services

import (
	"context"
	"errors"

	apperrors "homeinsight-sqft/internal/errors"
	"homeinsight-sqft/internal/models"
	"homeinsight-sqft/internal/transformers"
	"homeinsight-sqft/internal/validators"
	"homeinsight-sqft/pkg/logger"
	"homeinsight-sqft/pkg/metrics"
	"homeinsight-sqft/pkg/scrapeowl"
)

const (
	sourceManual  = "manual"
	sourceScraped = "scraped"
)

// SquareFootageService resolves square footage from a manual value or a scraped listing page.
type SquareFootageService struct {
	scraper   Scraper
	addrTrans transformers.AddressTransformer
	propTrans transformers.PropertyTransformer
	validator validators.SquareFootageValidator
}

func NewSquareFootageService(
	scraper Scraper,
	addrTrans transformers.AddressTransformer,
	propTrans transformers.PropertyTransformer,
	validator validators.SquareFootageValidator,
) *SquareFootageService {
	return &SquareFootageService{
		scraper:   scraper,
		addrTrans: addrTrans,
		propTrans: propTrans,
		validator: validator,
	}
}

// ResolveSquareFootage returns the manual value when one is given, even if an
// address is also present. Otherwise it scrapes the listing page for the address.
func (s *SquareFootageService) ResolveSquareFootage(ctx context.Context, req *models.SquareFootageRequest) (*models.SquareFootageResponse, error) {
	if err := s.validator.ValidateLookup(req); err != nil {
		return nil, err
	}

	if req.ManualSquareFootage != "" {
		sqft, err := s.validator.ParseManualSquareFootage(req.ManualSquareFootage)
		if err != nil {
			return nil, err
		}
		metrics.SquareFootageLookupsTotal.WithLabelValues(sourceManual).Inc()
		return s.propTrans.TransformManualValue(sqft), nil
	}

	return s.scrapeSquareFootage(ctx, req.Address)
}

func (s *SquareFootageService) scrapeSquareFootage(ctx context.Context, address string) (*models.SquareFootageResponse, error) {
	listingURL := s.addrTrans.ListingURL(address)
	logger.GlobalLogger.Printf("Scraping listing: url=%s", listingURL)

	res, err := s.scraper.Scrape(ctx, listingURL)
	if err != nil {
		logger.GlobalLogger.Errorf("Scrape failed: url=%s, error=%v", listingURL, err)
		return nil, apperrors.Upstream("scraping service call failed", apperrors.MsgFetchSquareFootageFailed, err)
	}

	resp, err := s.propTrans.TransformScrapeResult(res)
	switch {
	case errors.Is(err, transformers.ErrSquareFootageNotFound):
		metrics.SquareFootageExtractionsTotal.WithLabelValues("not_found").Inc()
		return nil, apperrors.NotFound(apperrors.ErrCodeSquareFootageNotFound,
			"no square footage pattern in "+listingURL, apperrors.MsgSquareFootageNotFound)
	case errors.Is(err, scrapeowl.ErrNoContent):
		return nil, apperrors.Upstream("scraping service returned no HTML", apperrors.MsgFetchSquareFootageFailed, err)
	case err != nil:
		return nil, apperrors.Upstream("failed to read scrape result", apperrors.MsgFetchSquareFootageFailed, err)
	}

	metrics.SquareFootageExtractionsTotal.WithLabelValues("matched").Inc()
	metrics.SquareFootageLookupsTotal.WithLabelValues(sourceScraped).Inc()
	return resp, nil
}
