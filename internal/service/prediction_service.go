package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fight-predictor/internal/cache"
	"github.com/yourusername/fight-predictor/internal/logger"
	"github.com/yourusername/fight-predictor/internal/metrics"
	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/odds"
	"github.com/yourusername/fight-predictor/internal/predictor"
	"github.com/yourusername/fight-predictor/internal/roster"
)

// MaxSimulationRuns caps SimulateMany.
const MaxSimulationRuns = 10000

// OddsReport is a prediction alongside the market's view of the same pairing.
type OddsReport struct {
	Odds       models.FightOdds       `json:"odds"`
	Comparison *models.OddsComparison `json:"comparison,omitempty"`
	Status     string                 `json:"status"`
}

// Odds report statuses.
const (
	OddsStatusOK          = "ok"
	OddsStatusNotFound    = "not_found"
	OddsStatusUnavailable = "odds_unavailable"
)

// PredictionService resolves fighter names against the roster and runs the engine
type PredictionService struct {
	roster        *roster.Roster
	engine        *predictor.Engine
	simulator     *predictor.Simulator
	cache         *cache.PredictionCache
	odds          *odds.Service
	logger        *logger.PredictionLogger
	defaultRounds int
}

// PredictionServiceConfig holds the optional collaborators of a PredictionService
type PredictionServiceConfig struct {
	Engine        *predictor.Engine
	Simulator     *predictor.Simulator
	Cache         *cache.PredictionCache
	Odds          *odds.Service
	DefaultRounds int
}

// NewPredictionService creates a prediction service over live. Nil collaborators get
// defaults; a nil cache disables caching and a nil odds service disables market lookups.
func NewPredictionService(live *roster.Roster, cfg PredictionServiceConfig, log *logrus.Logger) *PredictionService {
	if cfg.Engine == nil {
		cfg.Engine = predictor.NewEngine(nil)
	}
	if cfg.Simulator == nil {
		cfg.Simulator = predictor.NewSimulator(cfg.Engine, nil)
	}
	if cfg.DefaultRounds == 0 {
		cfg.DefaultRounds = predictor.DefaultRounds
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &PredictionService{
		roster:        live,
		engine:        cfg.Engine,
		simulator:     cfg.Simulator,
		cache:         cfg.Cache,
		odds:          cfg.Odds,
		logger:        logger.NewPredictionLogger(log),
		defaultRounds: cfg.DefaultRounds,
	}
}

// Roster returns the roster the service resolves names against
func (s *PredictionService) Roster() *roster.Roster {
	return s.roster
}

// ResolveRounds applies the default round count and rejects anything but 3 or 5.
func (s *PredictionService) ResolveRounds(numRounds int) (int, error) {
	if numRounds == 0 {
		return s.defaultRounds, nil
	}
	if numRounds != 3 && numRounds != 5 {
		return 0, fmt.Errorf("%w: got %d", models.ErrInvalidRoundCount, numRounds)
	}
	return numRounds, nil
}

// Pairing looks up both fighters by name.
func (s *PredictionService) Pairing(name1, name2 string) (*models.Fighter, *models.Fighter, error) {
	if strings.TrimSpace(name1) == "" || strings.TrimSpace(name2) == "" {
		return nil, nil, models.ErrFighterRequired
	}
	f1, err := s.lookup(name1)
	if err != nil {
		return nil, nil, err
	}
	f2, err := s.lookup(name2)
	if err != nil {
		return nil, nil, err
	}
	return f1, f2, nil
}

func (s *PredictionService) lookup(name string) (*models.Fighter, error) {
	f, err := s.roster.Get(name)
	if err != nil {
		if errors.Is(err, models.ErrFighterNotFound) {
			metrics.RecordFighterLookupFailure()
			s.logger.LogFighterNotFound(name)
		}
		return nil, err
	}
	return f, nil
}

// Predict scores the named pairing.
func (s *PredictionService) Predict(ctx context.Context, name1, name2 string, numRounds int) (*models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rounds, err := s.ResolveRounds(numRounds)
	if err != nil {
		return nil, err
	}
	f1, f2, err := s.Pairing(name1, name2)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	key := cache.Key{Fighter1: f1.Name, Fighter2: f2.Name, NumRounds: rounds}

	if s.cache != nil {
		if cached := s.cache.Get(key); cached != nil {
			s.record(cached, true, time.Since(start))
			return cached, nil
		}
	}

	prediction := s.engine.Predict(f1, f2, rounds)
	if s.cache != nil {
		s.cache.Set(key, prediction)
	}
	s.record(prediction, false, time.Since(start))
	return prediction, nil
}

func (s *PredictionService) record(p *models.Prediction, cached bool, elapsed time.Duration) {
	metrics.RecordPrediction(p.Outcome.ConfidenceTier.Tier, cached, p.Outcome.Confidence, elapsed.Seconds())
	s.logger.LogPrediction(p, cached, float64(elapsed.Microseconds())/1000)
}

// Simulate runs one stochastic simulation of the named pairing.
func (s *PredictionService) Simulate(ctx context.Context, name1, name2 string, numRounds int) (*models.Simulation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rounds, err := s.ResolveRounds(numRounds)
	if err != nil {
		return nil, err
	}
	f1, f2, err := s.Pairing(name1, name2)
	if err != nil {
		return nil, err
	}

	sim := s.simulator.Simulate(f1, f2, rounds)
	metrics.RecordSimulation(sim.Finished(), len(sim.Rounds))
	s.logger.LogSimulation(sim)
	return sim, nil
}

// SimulateMany runs the pairing repeatedly and summarizes the endings.
func (s *PredictionService) SimulateMany(ctx context.Context, name1, name2 string, numRounds, runs int) (*models.SimulationSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if runs > MaxSimulationRuns {
		return nil, fmt.Errorf("%w: runs must be at most %d, got %d", models.ErrInvalidRunCount, MaxSimulationRuns, runs)
	}
	rounds, err := s.ResolveRounds(numRounds)
	if err != nil {
		return nil, err
	}
	f1, f2, err := s.Pairing(name1, name2)
	if err != nil {
		return nil, err
	}
	return s.simulator.SimulateN(f1, f2, rounds, runs), nil
}

// Odds fetches the market for the pairing and compares it with prediction. Market
// problems never fail the call: they come back as a status.
func (s *PredictionService) Odds(ctx context.Context, prediction *models.Prediction) *OddsReport {
	report := &OddsReport{Status: OddsStatusUnavailable}
	if s.odds == nil || !s.odds.Enabled() || prediction == nil {
		return report
	}

	fight, err := s.odds.FindFightOdds(ctx, prediction.Fighter1.Name, prediction.Fighter2.Name)
	if err != nil {
		return report
	}

	report.Odds = fight
	if !fight.Found {
		report.Status = OddsStatusNotFound
		return report
	}
	cmp := odds.Compare(prediction, fight)
	report.Comparison = &cmp
	report.Status = OddsStatusOK
	return report
}

// InvalidateFighter drops cached predictions involving name.
func (s *PredictionService) InvalidateFighter(name string) int {
	if s.cache == nil {
		return 0
	}
	return s.cache.InvalidateFighter(name)
}

// ClearCache drops every cached prediction, typically after the roster changes.
func (s *PredictionService) ClearCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}
