package predictor

import (
	"math"
	"math/rand"

	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/parse"
)

const (
	strikeMinutesPerRound = 5
	strikeVarianceFloor   = 0.8
	strikeVarianceSpread  = 0.4
	stoppageDrawThreshold = 90.0
	stoppageFavourite     = 55.0
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// NewSeededSource returns a reproducible source. It must not be shared between goroutines.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Simulator plays a pairing out round by round.
type Simulator struct {
	engine *Engine
	rng    RandomSource
}

// NewSimulator creates a simulator. A nil engine uses the wall-clock engine and a nil
// source uses the process-wide math/rand source.
func NewSimulator(engine *Engine, rng RandomSource) *Simulator {
	if engine == nil {
		engine = defaultEngine
	}
	if rng == nil {
		rng = globalSource{}
	}
	return &Simulator{engine: engine, rng: rng}
}

// Simulate runs one stochastic fight. The engine is consulted once up front, and its
// win probabilities gate the stoppage draws. A stoppage ends the simulation.
func (s *Simulator) Simulate(fighter1, fighter2 *models.Fighter, numRounds int) *models.Simulation {
	prediction := s.engine.Predict(fighter1, fighter2, numRounds)
	if prediction == nil {
		return nil
	}
	numRounds = prediction.Analysis.NumRounds

	rate1 := parse.Number(fighter1.SigStrikesLandedPerMin)
	rate2 := parse.Number(fighter2.SigStrikesLandedPerMin)
	prob1 := prediction.Fighter1.WinProbability
	prob2 := prediction.Fighter2.WinProbability

	sim := &models.Simulation{
		Prediction: prediction,
		Rounds:     make([]models.RoundStats, 0, numRounds),
	}

	for round := 1; round <= numRounds; round++ {
		strikes1 := s.strikes(rate1)
		strikes2 := s.strikes(rate2)
		sim.TotalDamage.Fighter1 += strikes2
		sim.TotalDamage.Fighter2 += strikes1

		draw1 := s.rng.Float64() * 100
		draw2 := s.rng.Float64() * 100

		stats := models.RoundStats{
			Round:           round,
			Fighter1Strikes: strikes1,
			Fighter2Strikes: strikes2,
			Result:          models.RoundContinues,
		}
		switch {
		case draw1 > stoppageDrawThreshold && prob1 > stoppageFavourite:
			stats.Result = models.RoundFinish
			stats.Winner = fighter1.Name
		case draw2 > stoppageDrawThreshold && prob2 > stoppageFavourite:
			stats.Result = models.RoundFinish
			stats.Winner = fighter2.Name
		}

		sim.Rounds = append(sim.Rounds, stats)
		if stats.Result == models.RoundFinish {
			break
		}
	}

	return sim
}

func (s *Simulator) strikes(perMinute float64) int {
	variance := strikeVarianceFloor + s.rng.Float64()*strikeVarianceSpread
	return int(math.Floor(perMinute * strikeMinutesPerRound * variance))
}

// SimulateN runs the pairing runs times and tallies how the simulations ended.
func (s *Simulator) SimulateN(fighter1, fighter2 *models.Fighter, numRounds, runs int) *models.SimulationSummary {
	if fighter1 == nil || fighter2 == nil {
		return nil
	}
	if runs <= 0 {
		runs = 1
	}

	summary := &models.SimulationSummary{
		Runs:     runs,
		Finishes: make(map[string]int),
	}
	totalRounds := 0
	for i := 0; i < runs; i++ {
		sim := s.Simulate(fighter1, fighter2, numRounds)
		totalRounds += len(sim.Rounds)
		if stop := sim.Stoppage(); stop != nil {
			summary.Finishes[stop.Winner]++
			continue
		}
		summary.Decisions++
	}
	summary.AverageRounds = float64(totalRounds) / float64(runs)
	return summary
}
