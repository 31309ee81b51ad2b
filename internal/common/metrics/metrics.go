// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScraperRunsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scraper_runs_completed_total",
			Help: "Total number of successful scraper runs",
		},
		[]string{"scraper"},
	)

	ScraperRunsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scraper_runs_failed_total",
			Help: "Total number of failed scraper runs",
		},
		[]string{"scraper", "error_code"},
	)

	ScraperRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scraper_run_duration_seconds",
			Help:    "Duration of scraper runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"scraper"},
	)

	ScraperItemsReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scraper_items_returned_total",
			Help: "Total number of dataset items returned by scraper runs",
		},
		[]string{"scraper"},
	)

	IntentResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intent_resolutions_total",
			Help: "Total number of intent resolutions by resolved scraper name",
		},
		[]string{"scraper"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "run_cache_hits_total",
			Help: "Total number of run cache hits",
		},
		[]string{"scraper"},
	)
)
