package scrapeowl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"homeinsight-sqft/pkg/config"
	"homeinsight-sqft/pkg/logger"
	"homeinsight-sqft/pkg/metrics"
)

// ErrNoContent is returned when the scrape succeeded but carried no HTML.
var ErrNoContent = errors.New("scrape response contained no HTML content")

// Client manages ScrapeOwl scrape requests
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ScrapeRequest is the body posted to the scrape endpoint.
type ScrapeRequest struct {
	URL      string `json:"url"`
	RenderJS bool   `json:"render_js"`
}

// ScrapeResponse is the subset of the scrape result this service reads.
type ScrapeResponse struct {
	Content     string `json:"content"`
	HTML        string `json:"html"`
	ResolvedURL string `json:"resolved_url"`
	Status      int    `json:"status"`
}

// Body returns the page markup, preferring content over html.
func (r *ScrapeResponse) Body() string {
	if r.Content != "" {
		return r.Content
	}
	return r.HTML
}

// NewClient creates a new ScrapeOwl client
func NewClient(cfg config.ScrapeOwlConfig, timeout time.Duration) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithHTTPClient overrides the internal HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Scrape asks ScrapeOwl to fetch targetURL with JavaScript rendering enabled.
// A response without markup is reported as ErrNoContent.
func (c *Client) Scrape(ctx context.Context, targetURL string) (*ScrapeResponse, error) {
	start := time.Now()
	res, err := c.scrape(ctx, targetURL)
	metrics.RecordUpstream(metrics.ProviderScrapeOwl, time.Since(start).Seconds(), err)
	return res, err
}

func (c *Client) scrape(ctx context.Context, targetURL string) (*ScrapeResponse, error) {
	payload, err := json.Marshal(ScrapeRequest{URL: targetURL, RenderJS: true})
	if err != nil {
		return nil, fmt.Errorf("failed to encode scrape request: %w", err)
	}

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	endpoint := c.baseURL + "/v1/scrape"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?"+query.Encode(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create scrape request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the request URL carries the api key; log the target instead
		logger.GlobalLogger.Errorf("ScrapeOwl request failed: target=%s, error=%v", targetURL, redact(err, c.apiKey))
		return nil, fmt.Errorf("failed to send scrape request: %s", redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read ScrapeOwl response body: target=%s, status=%s, error=%v", targetURL, resp.Status, err)
		return nil, fmt.Errorf("failed to read scrape response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GlobalLogger.Errorf("ScrapeOwl request rejected: target=%s, status=%s, response=%s", targetURL, resp.Status, truncate(body, 512))
		return nil, fmt.Errorf("scrape request failed: %s", resp.Status)
	}

	var scrapeResp ScrapeResponse
	if err := json.Unmarshal(body, &scrapeResp); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode ScrapeOwl response: target=%s, error=%v", targetURL, err)
		return nil, fmt.Errorf("failed to decode scrape response: %w", err)
	}

	if scrapeResp.Body() == "" {
		return nil, ErrNoContent
	}

	return &scrapeResp, nil
}

func redact(err error, secret string) string {
	if secret == "" {
		return err.Error()
	}
	return strings.ReplaceAll(err.Error(), url.QueryEscape(secret), "REDACTED")
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
