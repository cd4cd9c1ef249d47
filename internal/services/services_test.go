package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "homeinsight-sqft/internal/errors"
	"homeinsight-sqft/internal/models"
	"homeinsight-sqft/internal/transformers"
	"homeinsight-sqft/internal/validators"
	"homeinsight-sqft/pkg/scrapeowl"
)

const testListingTemplate = "https://www.zillow.com/homes/%s_rb/"

type fakeCompleter struct {
	calls  int
	prompt string
	reply  string
	err    error
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.reply, f.err
}

type fakeScraper struct {
	calls  int
	target string
	res    *scrapeowl.ScrapeResponse
	err    error
}

func (f *fakeScraper) Scrape(_ context.Context, targetURL string) (*scrapeowl.ScrapeResponse, error) {
	f.calls++
	f.target = targetURL
	return f.res, f.err
}

func newAddressService(c Completer) *AddressService {
	return NewAddressService(c, transformers.NewAddressTransformer(testListingTemplate), validators.NewAddressValidator())
}

func newSquareFootageService(s Scraper) *SquareFootageService {
	return NewSquareFootageService(
		s,
		transformers.NewAddressTransformer(testListingTemplate),
		transformers.NewPropertyTransformer(transformers.NewPatternExtractor()),
		validators.NewSquareFootageValidator(),
	)
}

func TestCleanAddress(t *testing.T) {
	completer := &fakeCompleter{reply: "  123 Main St, Springfield, IL 62704\n"}
	svc := newAddressService(completer)

	resp, err := svc.CleanAddress(context.Background(), &models.AddressCleanupRequest{Address: "123 main st springfeld il"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CorrectedAddress != "123 Main St, Springfield, IL 62704" {
		t.Fatalf("unexpected corrected address %q", resp.CorrectedAddress)
	}
	if completer.calls != 1 {
		t.Fatalf("expected one completion call, got %d", completer.calls)
	}
	if !strings.Contains(completer.prompt, "Address: 123 main st springfeld il") {
		t.Fatalf("prompt does not embed the address: %q", completer.prompt)
	}
}

func TestCleanAddressRejectsEmptyWithoutCalling(t *testing.T) {
	completer := &fakeCompleter{reply: "unused"}
	svc := newAddressService(completer)

	for _, address := range []string{"", "  "} {
		_, err := svc.CleanAddress(context.Background(), &models.AddressCleanupRequest{Address: address})
		if !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Fatalf("%q: expected validation error, got %v", address, err)
		}
	}
	if completer.calls != 0 {
		t.Fatalf("expected no completion calls, got %d", completer.calls)
	}
}

func TestCleanAddressUpstreamFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	svc := newAddressService(&fakeCompleter{err: cause})

	_, err := svc.CleanAddress(context.Background(), &models.AddressCleanupRequest{Address: "1 Main St"})
	if !apperrors.IsKind(err, apperrors.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	appErr := apperrors.MapError(err)
	if strings.Contains(appErr.UserMessage, "connection refused") {
		t.Fatalf("user message leaks upstream detail: %q", appErr.UserMessage)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected the cause to be preserved for logging")
	}
}

func TestResolveManualShortCircuits(t *testing.T) {
	scraper := &fakeScraper{}
	svc := newSquareFootageService(scraper)

	resp, err := svc.ResolveSquareFootage(context.Background(), &models.SquareFootageRequest{
		Address:             "1 Main St",
		ManualSquareFootage: "1200",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SquareFootage != 1200 || resp.ResolvedAddress != nil || resp.ConfirmationNeeded {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if scraper.calls != 0 {
		t.Fatalf("manual value must not trigger a scrape, got %d calls", scraper.calls)
	}
}

func TestResolveRejectsInvalidManual(t *testing.T) {
	scraper := &fakeScraper{}
	svc := newSquareFootageService(scraper)

	for _, manual := range []models.NumericText{"-5", "abc", "0"} {
		_, err := svc.ResolveSquareFootage(context.Background(), &models.SquareFootageRequest{
			Address:             "1 Main St",
			ManualSquareFootage: manual,
		})
		if !apperrors.IsKind(err, apperrors.KindValidation) {
			t.Fatalf("%q: expected validation error, got %v", manual, err)
		}
	}
	if scraper.calls != 0 {
		t.Fatalf("expected no scrape calls, got %d", scraper.calls)
	}
}

func TestResolveRequiresInput(t *testing.T) {
	scraper := &fakeScraper{}
	_, err := newSquareFootageService(scraper).ResolveSquareFootage(context.Background(), &models.SquareFootageRequest{})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if scraper.calls != 0 {
		t.Fatalf("expected no scrape calls, got %d", scraper.calls)
	}
}

func TestResolveScrapesListing(t *testing.T) {
	scraper := &fakeScraper{res: &scrapeowl.ScrapeResponse{
		Content:     `<div><span>1,234</span><span>sqft</span></div>`,
		ResolvedURL: "https://www.zillow.com/homedetails/123-Main-St/1_zpid/",
	}}
	svc := newSquareFootageService(scraper)

	resp, err := svc.ResolveSquareFootage(context.Background(), &models.SquareFootageRequest{Address: "123 Main St, Springfield"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SquareFootage != 1234 || !resp.ConfirmationNeeded {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ResolvedAddress == nil || *resp.ResolvedAddress != "https://www.zillow.com/homedetails/123-Main-St/1_zpid/" {
		t.Fatalf("unexpected resolved address: %v", resp.ResolvedAddress)
	}
	if scraper.target != "https://www.zillow.com/homes/123%20Main%20St%2C%20Springfield_rb/" {
		t.Fatalf("unexpected scrape target %s", scraper.target)
	}
}

func TestResolveNotFound(t *testing.T) {
	svc := newSquareFootageService(&fakeScraper{res: &scrapeowl.ScrapeResponse{Content: "<html><body>no data</body></html>"}})

	_, err := svc.ResolveSquareFootage(context.Background(), &models.SquareFootageRequest{Address: "1 Main St"})
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestResolveScrapeFailures(t *testing.T) {
	tests := map[string]*fakeScraper{
		"network error": {err: errors.New("dial tcp: i/o timeout")},
		"no content":    {err: scrapeowl.ErrNoContent},
		"empty result":  {res: &scrapeowl.ScrapeResponse{}},
	}

	for name, scraper := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newSquareFootageService(scraper).ResolveSquareFootage(context.Background(), &models.SquareFootageRequest{Address: "1 Main St"})
			if !apperrors.IsKind(err, apperrors.KindUpstream) {
				t.Fatalf("expected upstream error, got %v", err)
			}
			if apperrors.MapError(err).UserMessage != apperrors.MsgFetchSquareFootageFailed {
				t.Fatalf("unexpected user message %q", apperrors.MapError(err).UserMessage)
			}
		})
	}
}
