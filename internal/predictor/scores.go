package predictor

import (
	"math"

	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/parse"
)

// stats is the numeric view of a fighter record. Every field fails soft to 0.
type stats struct {
	slpm   float64 // significant strikes landed per minute
	sapm   float64 // significant strikes absorbed per minute
	strAcc float64
	strDef float64
	tdAvg  float64
	tdAcc  float64
	tdDef  float64
	subAvg float64

	height float64
	reach  float64
	weight float64

	wins  int
	total int
}

func newStats(f *models.Fighter) stats {
	return stats{
		slpm:   parse.Number(f.SigStrikesLandedPerMin),
		sapm:   parse.Number(f.SigStrikesAbsorbedPerMin),
		strAcc: parse.Percent(f.StrikingAccuracy),
		strDef: parse.Percent(f.StrikingDefense),
		tdAvg:  parse.Number(f.TakedownAvg),
		tdAcc:  parse.Percent(f.TakedownAccuracy),
		tdDef:  parse.Percent(f.TakedownDefense),
		subAvg: parse.Number(f.SubmissionAvg),
		height: parse.Height(f.Height),
		reach:  parse.Number(f.Reach),
		weight: parse.Number(f.Weight),
		wins:   f.Wins,
		total:  f.TotalFights(),
	}
}

// strikingScore rewards output, accuracy and defence and penalises strikes absorbed.
// Absorption is not clamped, so a very high rate drives the score negative.
func strikingScore(s stats) float64 {
	offensive := (s.slpm * 10) + (s.strAcc * 0.5)
	defensive := (s.strDef * 0.5) + ((10 - s.sapm) * 10)
	return (offensive + defensive) / 2
}

func grapplingScore(s stats) float64 {
	offensive := (s.tdAvg * 20) + (s.tdAcc * 0.3) + (s.subAvg * 30)
	defensive := s.tdDef * 0.5
	return (offensive + defensive) / 2
}

// recordScore is 80 points of win rate plus up to 20 points of experience (30 fights).
func recordScore(s stats) float64 {
	if s.total == 0 {
		return 0
	}
	winRate := float64(s.wins) / float64(s.total)
	experience := math.Min(float64(s.total)/30, 1) * 20
	return (winRate * 80) + experience
}

// physicalAdvantage is fighter a's reach and height edge over b. It is zero-sum: b's
// physical score is the negation. A measurement missing on either side contributes nothing.
func physicalAdvantage(a, b stats) float64 {
	advantage := 0.0
	if a.reach != 0 && b.reach != 0 {
		advantage += (a.reach - b.reach) * 0.5
	}
	if a.height != 0 && b.height != 0 {
		advantage += (a.height - b.height) * 0.3
	}
	return advantage
}

// finishRate estimates, as a percentage, how likely a fighter is to end fights early.
// Fighters without a win have no finishing record to speak of.
func finishRate(s stats) float64 {
	if s.wins == 0 {
		return 0
	}
	potential := (s.subAvg * 10) + (s.slpm * s.strAcc / 100)
	return math.Min(potential/10, 1) * 100
}
