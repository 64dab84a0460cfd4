// Package metrics provides the Prometheus metrics registry for the fight predictor.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fight_predictor"

var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total number of predictions by confidence tier and cache status",
	}, []string{"tier", "cached"})
	SimulationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulations_total",
		Help:      "Total number of simulations by result",
	}, []string{"result"})
	FighterLookupFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fighter_lookup_failures_total",
		Help:      "Total number of fighter names not found in the roster",
	})
	CardEntriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "card_entries_total",
		Help:      "Total fight card changes by operation",
	}, []string{"operation"})
)

// Gauge metrics
var (
	RosterSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "roster_size",
		Help:      "Number of fighters currently loaded",
	})
	PredictionCacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "prediction_cache_hit_ratio",
		Help:      "Hit ratio of the prediction cache",
	})
)

// Histogram metrics
var (
	PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Duration of prediction requests in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})
	PredictionConfidence = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_confidence",
		Help:      "Winner probability of predictions",
		Buckets:   []float64{50, 55, 60, 65, 70, 75, 80, 90, 100},
	})
	SimulationRounds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "simulation_rounds",
		Help:      "Rounds fought per simulation",
		Buckets:   []float64{1, 2, 3, 4, 5},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(SimulationsTotal)
		registry.MustRegister(FighterLookupFailuresTotal)
		registry.MustRegister(CardEntriesTotal)

		registry.MustRegister(RosterSize)
		registry.MustRegister(PredictionCacheHitRatio)

		registry.MustRegister(PredictionDuration)
		registry.MustRegister(PredictionConfidence)
		registry.MustRegister(SimulationRounds)

		// Odds feed metrics
		registry.MustRegister(OddsRequestsTotal)
		registry.MustRegister(OddsCacheHitsTotal)
		registry.MustRegister(OddsRequestsRemaining)
		registry.MustRegister(OddsRequestDuration)

		// Ingestion metrics
		registry.MustRegister(IngestionRunsTotal)
		registry.MustRegister(IngestedFightersTotal)
		registry.MustRegister(IngestionDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return InitRegistry()
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordPrediction records a completed prediction.
func RecordPrediction(tier string, cached bool, confidence, durationSeconds float64) {
	PredictionsTotal.WithLabelValues(tier, boolLabel(cached)).Inc()
	PredictionConfidence.Observe(confidence)
	PredictionDuration.Observe(durationSeconds)
}

// RecordSimulation records a completed simulation.
func RecordSimulation(finished bool, rounds int) {
	result := "decision"
	if finished {
		result = "finish"
	}
	SimulationsTotal.WithLabelValues(result).Inc()
	SimulationRounds.Observe(float64(rounds))
}

// RecordFighterLookupFailure records a roster miss.
func RecordFighterLookupFailure() {
	FighterLookupFailuresTotal.Inc()
}

// RecordCardEntry records an add or remove on the fight card.
func RecordCardEntry(operation string) {
	CardEntriesTotal.WithLabelValues(operation).Inc()
}

// UpdateRosterSize updates the roster size gauge.
func UpdateRosterSize(count int) {
	RosterSize.Set(float64(count))
}

// UpdatePredictionCacheHitRatio updates the cache hit ratio gauge.
func UpdatePredictionCacheHitRatio(ratio float64) {
	PredictionCacheHitRatio.Set(ratio)
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
