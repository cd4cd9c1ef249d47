package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of outbound calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Outbound call duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"provider"},
	)
	SquareFootageExtractionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqft_extractions_total",
			Help: "Square footage extraction attempts on scraped pages by result",
		},
		[]string{"result"},
	)
	SquareFootageLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqft_lookups_total",
			Help: "Square footage lookups by source",
		},
		[]string{"source"},
	)
)

const (
	ProviderOpenAI    = "openai"
	ProviderScrapeOwl = "scrapeowl"

	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var once sync.Once

// Init registers the collectors with the default registry; repeated calls are no-ops.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(UpstreamRequestsTotal)
		prometheus.MustRegister(UpstreamRequestDuration)
		prometheus.MustRegister(SquareFootageExtractionsTotal)
		prometheus.MustRegister(SquareFootageLookupsTotal)
	})
}

// RecordUpstream tracks one outbound call.
func RecordUpstream(provider string, seconds float64, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	UpstreamRequestsTotal.WithLabelValues(provider, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(provider).Observe(seconds)
}
