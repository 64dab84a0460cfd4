package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/fight-predictor/internal/models"
)

// PredictionLogger provides dedicated logging for predictions and simulations.
type PredictionLogger struct {
	*logrus.Entry
}

// NewPredictionLogger creates a new prediction logger.
func NewPredictionLogger(baseLogger *logrus.Logger) *PredictionLogger {
	return &PredictionLogger{
		Entry: baseLogger.WithField("component", "prediction"),
	}
}

// LogPrediction logs a completed prediction.
func (pl *PredictionLogger) LogPrediction(p *models.Prediction, cacheHit bool, latencyMs float64) {
	pl.WithFields(logrus.Fields{
		"fighter1":      p.Fighter1.Name,
		"fighter2":      p.Fighter2.Name,
		"winner":        p.Outcome.Winner,
		"confidence":    models.Round1(p.Outcome.Confidence),
		"tier":          p.Outcome.ConfidenceTier.Tier,
		"likely_finish": p.Outcome.LikelyFinish,
		"weight_class":  p.Analysis.WeightClass,
		"num_rounds":    p.Analysis.NumRounds,
		"cache_hit":     cacheHit,
		"latency_ms":    latencyMs,
	}).Info("Prediction completed")
}

// LogSimulation logs a completed round-by-round simulation.
func (pl *PredictionLogger) LogSimulation(sim *models.Simulation) {
	fields := logrus.Fields{
		"fighter1":        sim.Prediction.Fighter1.Name,
		"fighter2":        sim.Prediction.Fighter2.Name,
		"rounds_fought":   len(sim.Rounds),
		"fighter1_damage": sim.TotalDamage.Fighter1,
		"fighter2_damage": sim.TotalDamage.Fighter2,
	}
	if stop := sim.Stoppage(); stop != nil {
		fields["finish_round"] = stop.Round
		fields["finish_winner"] = stop.Winner
	}
	pl.WithFields(fields).Info("Simulation completed")
}

// LogFighterNotFound logs a lookup of a name missing from the roster.
func (pl *PredictionLogger) LogFighterNotFound(name string) {
	pl.WithField("fighter", name).Warn("Fighter not found in roster")
}
