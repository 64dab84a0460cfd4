// Package predictor scores a pairing of fighters and simulates the fight round by round.
package predictor

import (
	"fmt"
	"math"
	"time"

	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/parse"
)

// DefaultRounds is the scheduled length used when a caller does not give one.
const DefaultRounds = 5

// Sub-score weights of the total score.
const (
	strikingWeight  = 0.35
	grapplingWeight = 0.30
	recordWeight    = 0.25
	physicalWeight  = 0.10
)

// Clock returns the current time. It is only used to derive age from date of birth.
type Clock func() time.Time

// Engine turns two fighter records into a prediction. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	now Clock
}

// NewEngine creates an engine. A nil clock uses the wall clock.
func NewEngine(now Clock) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

var defaultEngine = NewEngine(nil)

// Predict scores fighter1 against fighter2 with the wall-clock engine.
func Predict(fighter1, fighter2 *models.Fighter, numRounds int) *models.Prediction {
	return defaultEngine.Predict(fighter1, fighter2, numRounds)
}

// side collects everything computed for one fighter on the way to the total.
type side struct {
	fighter    *models.Fighter
	stats      stats
	striking   float64 // weight-class adjusted
	grappling  float64 // weight-class adjusted
	record     float64
	physical   float64
	stance     float64
	style      models.Style
	age        *int
	ageFactor  float64
	lengthAdj  float64
	finishRate float64
	total      float64
}

// Predict scores fighter1 against fighter2 over numRounds. It returns nil when either
// fighter is missing. The result only depends on the inputs and the engine's clock.
func (e *Engine) Predict(fighter1, fighter2 *models.Fighter, numRounds int) *models.Prediction {
	if fighter1 == nil || fighter2 == nil {
		return nil
	}
	if numRounds <= 0 {
		numRounds = DefaultRounds
	}

	s1, s2 := newStats(fighter1), newStats(fighter2)

	// The division is read from the first fighter only.
	weightClass := DetectWeightClass(s1.weight)
	adj := AdjustmentFor(weightClass)

	f1 := e.score(fighter1, fighter2, s1, adj, numRounds)
	f2 := e.score(fighter2, fighter1, s2, adj, numRounds)

	f1.physical = physicalAdvantage(s1, s2)
	f2.physical = -f1.physical

	multipliers := StyleMatchup(f1.style, f2.style)
	f1.total = combine(f1, multipliers.Fighter1)
	f2.total = combine(f2, multipliers.Fighter2)

	prob1 := 50.0
	if sum := f1.total + f2.total; sum > 0 {
		prob1 = f1.total / sum * 100
	}
	prob2 := 100 - prob1

	winner, loser := f1, f2
	winnerProb := prob1
	if prob2 > prob1 {
		winner, loser = f2, f1
		winnerProb = prob2
	}

	finishAnalysis := roundFinishProbability(winner.finishRate, loser.fighter, numRounds)

	return &models.Prediction{
		Fighter1: f1.analysis(prob1),
		Fighter2: f2.analysis(prob2),
		Outcome: models.Outcome{
			Winner:         winner.fighter.Name,
			Confidence:     winnerProb,
			ConfidenceTier: ConfidenceTierFor(winnerProb),
			LikelyFinish:   likelyFinish(winner.striking, winner.grappling, winner.stats.subAvg),
			CloseFight:     math.Abs(prob1-prob2) < 10,
			FinishAnalysis: finishAnalysis,
		},
		Analysis: models.Analysis{
			WeightClass:      weightClass,
			StyleMatchup:     fmt.Sprintf("%s vs %s", f1.style, f2.style),
			Fighter1Style:    f1.style,
			Fighter2Style:    f2.style,
			StyleMultipliers: multipliers,
			KeyAdvantages: keyAdvantages(
				scoreSide{name: f1.fighter.Name, striking: f1.striking, grappling: f1.grappling, ageFactor: f1.ageFactor, finishRate: f1.finishRate},
				scoreSide{name: f2.fighter.Name, striking: f2.striking, grappling: f2.grappling, ageFactor: f2.ageFactor, finishRate: f2.finishRate},
			),
			NumRounds: numRounds,
		},
	}
}

// score computes every per-fighter input except the zero-sum physical edge.
func (e *Engine) score(fighter, opponent *models.Fighter, s stats, adj WeightClassAdjustment, numRounds int) side {
	rawStriking := strikingScore(s)
	rawGrappling := grapplingScore(s)
	age := e.age(fighter)

	return side{
		fighter:    fighter,
		stats:      s,
		striking:   rawStriking * adj.Striking,
		grappling:  rawGrappling * adj.Grappling,
		record:     recordScore(s),
		stance:     stanceAdvantage(fighter, opponent),
		style:      ClassifyStyle(rawStriking, rawGrappling),
		age:        age,
		ageFactor:  AgeFactor(age),
		lengthAdj:  fightLengthAdjustment(s, numRounds),
		finishRate: finishRate(s),
	}
}

// combine applies the adjustment layers in their fixed order: weighted sum, stance bonus,
// style multiplier, age factor, fight length.
func combine(s side, styleMultiplier float64) float64 {
	total := (s.striking * strikingWeight) +
		(s.grappling * grapplingWeight) +
		(s.record * recordWeight) +
		(s.physical * physicalWeight)

	total += s.stance
	total *= styleMultiplier
	total *= s.ageFactor
	total *= s.lengthAdj
	return total
}

func (e *Engine) age(f *models.Fighter) *int {
	birth, ok := parse.Date(f.DOB)
	if !ok {
		return nil
	}
	age := parse.Age(birth, e.now())
	return &age
}

func (s side) analysis(winProbability float64) models.FighterAnalysis {
	return models.FighterAnalysis{
		Name:           s.fighter.Name,
		Data:           s.fighter,
		WinProbability: winProbability,
		StrikingScore:  s.striking,
		GrapplingScore: s.grappling,
		RecordScore:    s.record,
		PhysicalScore:  s.physical,
		TotalScore:     s.total,
		Age:            s.age,
		AgeFactor:      s.ageFactor,
		FinishRate:     s.finishRate,
		Style:          s.style,
	}
}
