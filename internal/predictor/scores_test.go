package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/fight-predictor/internal/models"
)

func TestStrikingScore(t *testing.T) {
	s := newStats(striker())
	assert.InDelta(t, 92.5, strikingScore(s), 1e-9)

	// Absorption above 10 per minute is not clamped.
	assert.Less(t, strikingScore(stats{sapm: 20}), 0.0)
}

func TestGrapplingScore(t *testing.T) {
	assert.InDelta(t, 97.5, grapplingScore(newStats(grappler())), 1e-9)
	assert.InDelta(t, 12.5, grapplingScore(newStats(striker())), 1e-9)
}

func TestRecordScore(t *testing.T) {
	assert.Equal(t, 0.0, recordScore(stats{}))
	// 30-0: full win rate and full experience.
	assert.InDelta(t, 100.0, recordScore(stats{wins: 30, total: 30}), 1e-9)
	// 5-5: half win rate, a third of the experience credit.
	assert.InDelta(t, 40+20.0/3, recordScore(stats{wins: 5, total: 10}), 1e-9)
}

func TestPhysicalAdvantage(t *testing.T) {
	a := stats{reach: 76, height: 74}
	b := stats{reach: 70, height: 70}
	assert.InDelta(t, 3+1.2, physicalAdvantage(a, b), 1e-9)
	assert.InDelta(t, -4.2, physicalAdvantage(b, a), 1e-9)

	// Missing reach on one side only drops the reach term.
	assert.InDelta(t, 1.2, physicalAdvantage(stats{reach: 76, height: 74}, stats{height: 70}), 1e-9)
	assert.Zero(t, physicalAdvantage(stats{}, b))
}

func TestFinishRate(t *testing.T) {
	assert.Zero(t, finishRate(stats{subAvg: 3, slpm: 6, strAcc: 50}))
	assert.InDelta(t, 100.0, finishRate(stats{wins: 1, subAvg: 1.5}), 1e-9)
	assert.InDelta(t, 30.0, finishRate(stats{wins: 1, slpm: 6, strAcc: 50}), 1e-9)
}

func TestNewStatsFailsSoft(t *testing.T) {
	s := newStats(&models.Fighter{
		Height:           "5' 11\"",
		Weight:           "155 lbs.",
		Reach:            "--",
		StrikingAccuracy: "garbage",
		TakedownDefense:  "85%",
	})
	assert.Equal(t, 71.0, s.height)
	assert.Equal(t, 155.0, s.weight)
	assert.Zero(t, s.reach)
	assert.Zero(t, s.strAcc)
	assert.Equal(t, 85.0, s.tdDef)
}
