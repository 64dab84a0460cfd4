package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/fight-predictor/internal/models"
)

// scriptedSource replays values in order and wraps around.
type scriptedSource struct {
	values []float64
	next   int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestSimulateNilFighter(t *testing.T) {
	sim := NewSimulator(NewEngine(fixedClock), &scriptedSource{values: []float64{0}})
	assert.Nil(t, sim.Simulate(nil, striker(), 5))
	assert.Nil(t, sim.Simulate(grappler(), nil, 5))
}

func TestSimulateFavouriteFinishes(t *testing.T) {
	// Round 1: both strike draws at the floor, then a stoppage draw for the favourite.
	src := &scriptedSource{values: []float64{0, 0, 0.95, 0}}
	sim := NewSimulator(NewEngine(fixedClock), src)

	result := sim.Simulate(grappler(), striker(), 5)
	require.NotNil(t, result)
	require.Len(t, result.Rounds, 1)

	round := result.Rounds[0]
	assert.Equal(t, 1, round.Round)
	assert.Equal(t, 8, round.Fighter1Strikes)
	assert.Equal(t, 24, round.Fighter2Strikes)
	assert.Equal(t, models.RoundFinish, round.Result)
	assert.Equal(t, "Khabib Test", round.Winner)

	assert.Equal(t, models.Damage{Fighter1: 24, Fighter2: 8}, result.TotalDamage)
	assert.True(t, result.Finished())
	require.NotNil(t, result.Stoppage())
	assert.Equal(t, 4, src.next, "exactly four draws per round")
}

func TestSimulateUnderdogCannotFinish(t *testing.T) {
	// The underdog's stoppage draw always fires, but it is below the 55% gate.
	src := &scriptedSource{values: []float64{0, 0, 0.1, 0.99}}
	sim := NewSimulator(NewEngine(fixedClock), src)

	result := sim.Simulate(grappler(), striker(), 5)
	require.NotNil(t, result)
	require.Len(t, result.Rounds, 5)
	for i, round := range result.Rounds {
		assert.Equal(t, i+1, round.Round)
		assert.Equal(t, models.RoundContinues, round.Result)
		assert.Empty(t, round.Winner)
	}
	assert.False(t, result.Finished())
	assert.Nil(t, result.Stoppage())
	assert.Equal(t, models.Damage{Fighter1: 5 * 24, Fighter2: 5 * 8}, result.TotalDamage)
}

func TestSimulateTossUpGoesTheDistance(t *testing.T) {
	src := &scriptedSource{values: []float64{0.5, 0.5, 0.99, 0.99}}
	sim := NewSimulator(NewEngine(fixedClock), src)

	result := sim.Simulate(balanced("A"), balanced("B"), 3)
	require.NotNil(t, result)
	assert.Len(t, result.Rounds, 3)
	assert.False(t, result.Finished())
	assert.Equal(t, 3, result.Prediction.Analysis.NumRounds)
}

func TestSimulateFinishInLaterRound(t *testing.T) {
	src := &scriptedSource{values: []float64{
		0, 0, 0.2, 0.2, // round 1
		0, 0, 0.2, 0.2, // round 2
		0, 0, 0.91, 0.2, // round 3
	}}
	sim := NewSimulator(NewEngine(fixedClock), src)

	result := sim.Simulate(grappler(), striker(), 5)
	require.NotNil(t, result)
	require.Len(t, result.Rounds, 3)
	assert.Equal(t, models.RoundFinish, result.Rounds[2].Result)
	assert.Equal(t, 3, result.Stoppage().Round)
}

func TestSimulateRoundsNeverExceedSchedule(t *testing.T) {
	sim := NewSimulator(NewEngine(fixedClock), NewSeededSource(42))
	for i := 0; i < 200; i++ {
		result := sim.Simulate(grappler(), striker(), 3)
		require.NotNil(t, result)
		assert.LessOrEqual(t, len(result.Rounds), 3)
		assert.GreaterOrEqual(t, len(result.Rounds), 1)

		damage := models.Damage{}
		for _, round := range result.Rounds {
			damage.Fighter1 += round.Fighter2Strikes
			damage.Fighter2 += round.Fighter1Strikes
		}
		assert.Equal(t, damage, result.TotalDamage)
	}
}

func TestSimulateN(t *testing.T) {
	src := &scriptedSource{values: []float64{0, 0, 0.1, 0.1}}
	sim := NewSimulator(NewEngine(fixedClock), src)

	summary := sim.SimulateN(grappler(), striker(), 5, 10)
	require.NotNil(t, summary)
	assert.Equal(t, 10, summary.Runs)
	assert.Equal(t, 10, summary.Decisions)
	assert.Empty(t, summary.Finishes)
	assert.Equal(t, 5.0, summary.AverageRounds)

	src = &scriptedSource{values: []float64{0, 0, 0.95, 0}}
	sim = NewSimulator(NewEngine(fixedClock), src)
	summary = sim.SimulateN(grappler(), striker(), 5, 4)
	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.Decisions)
	assert.Equal(t, map[string]int{"Khabib Test": 4}, summary.Finishes)
	assert.Equal(t, 1.0, summary.AverageRounds)

	assert.Nil(t, sim.SimulateN(nil, striker(), 5, 4))
}
