package models

// Round results of a simulated round.
const (
	RoundContinues = "Continues"
	RoundFinish    = "Finish"
)

// Simulation is a stochastic round-by-round run of a pairing.
type Simulation struct {
	Prediction  *Prediction  `json:"prediction"`
	Rounds      []RoundStats `json:"rounds"`
	TotalDamage Damage       `json:"total_damage"`
}

// RoundStats is one simulated round. Winner is empty unless Result is RoundFinish.
type RoundStats struct {
	Round           int    `json:"round"`
	Fighter1Strikes int    `json:"fighter1_strikes"`
	Fighter2Strikes int    `json:"fighter2_strikes"`
	Result          string `json:"result"`
	Winner          string `json:"winner,omitempty"`
}

// Damage is the cumulative number of strikes each fighter absorbed.
type Damage struct {
	Fighter1 int `json:"fighter1"`
	Fighter2 int `json:"fighter2"`
}

// Finished reports whether the simulation ended before the scheduled distance.
func (s *Simulation) Finished() bool {
	if len(s.Rounds) == 0 {
		return false
	}
	return s.Rounds[len(s.Rounds)-1].Result == RoundFinish
}

// Stoppage returns the finishing round, or nil when the simulation went the distance.
func (s *Simulation) Stoppage() *RoundStats {
	if !s.Finished() {
		return nil
	}
	last := s.Rounds[len(s.Rounds)-1]
	return &last
}

// SimulationSummary aggregates repeated simulations of the same pairing.
type SimulationSummary struct {
	Runs          int            `json:"runs"`
	Finishes      map[string]int `json:"finishes"`
	Decisions     int            `json:"decisions"`
	AverageRounds float64        `json:"average_rounds"`
}
