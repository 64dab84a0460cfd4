package predictor

import (
	"math"

	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/parse"
)

const (
	maxFinishPerRound   = 0.15
	fatiguePerRound     = 0.15
	remainingRoundShare = 0.25
	defaultDefense      = 50.0
)

// likelyFinish picks the winner's most plausible route to victory from their
// weight-class-adjusted striking and grappling scores.
func likelyFinish(striking, grappling, subAvg float64) models.FinishMethod {
	switch {
	case grappling > striking*1.3 && subAvg > 0.5:
		return models.FinishSubmission
	case grappling > striking*1.2:
		return models.FinishGroundAndPound
	case striking > grappling*1.3:
		return models.FinishKnockout
	default:
		return models.FinishDecision
	}
}

// defensePercent reads a defensive percentage, substituting the league-average default
// when the record does not carry the field at all.
func defensePercent(raw string) float64 {
	if !parse.Present(raw) {
		return defaultDefense
	}
	return parse.Percent(raw)
}

// roundFinishProbability builds the round-by-round finish curve for winner against loser.
// No single round may take more than a quarter of the finish probability still
// unconsumed, so the cumulative total stays below 100%. Out-of-range defence figures
// cannot push a round below zero.
func roundFinishProbability(winnerFinishRate float64, loser *models.Fighter, numRounds int) models.FinishAnalysis {
	base := winnerFinishRate / 100 * maxFinishPerRound
	defense := math.Max(defensePercent(loser.StrikingDefense), defensePercent(loser.TakedownDefense))
	defenseFactor := (100 - defense) / 100

	rounds := make([]models.RoundProbability, 0, numRounds)
	cumulative := 0.0
	for round := 1; round <= numRounds; round++ {
		multiplier := 1 + float64(round-1)*fatiguePerRound
		raw := base * defenseFactor * multiplier
		adjusted := math.Max(0, math.Min(raw, (1-cumulative)*remainingRoundShare))

		rounds = append(rounds, models.RoundProbability{
			Round:       round,
			Probability: adjusted * 100,
		})
		cumulative += adjusted
	}

	total := cumulative * 100
	decision := 100 - total

	outcome := models.OutcomeFinish
	if decision > 50 {
		outcome = models.OutcomeDecision
	}

	return models.FinishAnalysis{
		RoundProbabilities:     rounds,
		TotalFinishProbability: total,
		DecisionProbability:    decision,
		LikelyOutcome:          outcome,
	}
}
