package metrics

import "github.com/prometheus/client_golang/prometheus"

// Roster ingestion metrics
var (
	IngestionRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_runs_total",
		Help:      "Total roster ingestion runs by source and status",
	}, []string{"source", "status"})

	IngestedFightersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingested_fighters_total",
		Help:      "Total fighter records processed by outcome",
	}, []string{"outcome"})

	IngestionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingestion_duration_seconds",
		Help:      "Duration of roster ingestion runs in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60},
	})
)

// RecordIngestion records a finished ingestion run.
func RecordIngestion(source string, err error, stored, invalid int, durationSeconds float64) {
	status := "success"
	if err != nil {
		status = "error"
	}
	IngestionRunsTotal.WithLabelValues(source, status).Inc()
	IngestedFightersTotal.WithLabelValues("stored").Add(float64(stored))
	IngestedFightersTotal.WithLabelValues("invalid").Add(float64(invalid))
	IngestionDuration.Observe(durationSeconds)
}
