package metrics

import "github.com/prometheus/client_golang/prometheus"

// Odds feed metrics
var (
	OddsRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "odds_requests_total",
		Help:      "Total odds feed requests by status",
	}, []string{"status"})

	OddsCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "odds_cache_hits_total",
		Help:      "Total odds lookups served from the cache",
	})

	OddsRequestsRemaining = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "odds_requests_remaining",
		Help:      "Requests remaining in the odds feed quota",
	})

	OddsRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "odds_request_duration_seconds",
		Help:      "Duration of odds feed requests in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// RecordOddsRequest records an odds feed request outcome.
func RecordOddsRequest(status string, durationSeconds float64) {
	OddsRequestsTotal.WithLabelValues(status).Inc()
	OddsRequestDuration.Observe(durationSeconds)
}

// RecordOddsCacheHit records an odds lookup served from the cache.
func RecordOddsCacheHit() {
	OddsCacheHitsTotal.Inc()
}

// UpdateOddsRequestsRemaining updates the remaining quota gauge.
func UpdateOddsRequestsRemaining(remaining float64) {
	OddsRequestsRemaining.Set(remaining)
}
