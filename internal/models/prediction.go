package models

import "math"

// Style is the fighting style derived from a fighter's striking and grappling scores.
type Style string

const (
	StyleStriker  Style = "Striker"
	StyleGrappler Style = "Grappler"
	StyleBalanced Style = "Balanced"
)

// WeightClass is the division a pairing is scored in.
type WeightClass string

const (
	Flyweight        WeightClass = "Flyweight"
	Bantamweight     WeightClass = "Bantamweight"
	Featherweight    WeightClass = "Featherweight"
	Lightweight      WeightClass = "Lightweight"
	Welterweight     WeightClass = "Welterweight"
	Middleweight     WeightClass = "Middleweight"
	LightHeavyweight WeightClass = "Light Heavyweight"
	Heavyweight      WeightClass = "Heavyweight"
)

// FinishMethod is the predicted way the favoured fighter wins.
type FinishMethod string

const (
	FinishSubmission     FinishMethod = "Submission"
	FinishGroundAndPound FinishMethod = "Ground and Pound / TKO"
	FinishKnockout       FinishMethod = "KO/TKO"
	FinishDecision       FinishMethod = "Decision"
)

// Likely outcome labels of a finish analysis.
const (
	OutcomeDecision = "Decision"
	OutcomeFinish   = "Finish"
)

// Prediction is the full result of scoring one pairing. It is never mutated after the
// engine returns it.
type Prediction struct {
	Fighter1 FighterAnalysis `json:"fighter1"`
	Fighter2 FighterAnalysis `json:"fighter2"`
	Outcome  Outcome         `json:"prediction"`
	Analysis Analysis        `json:"analysis"`
}

// FighterAnalysis holds the per-fighter sub-scores behind a prediction.
type FighterAnalysis struct {
	Name           string   `json:"name"`
	Data           *Fighter `json:"data,omitempty"`
	WinProbability float64  `json:"win_probability"`
	StrikingScore  float64  `json:"striking_score"`
	GrapplingScore float64  `json:"grappling_score"`
	RecordScore    float64  `json:"record_score"`
	PhysicalScore  float64  `json:"physical_score"`
	TotalScore     float64  `json:"total_score"`
	Age            *int     `json:"age"`
	AgeFactor      float64  `json:"age_factor"`
	FinishRate     float64  `json:"finish_rate"`
	Style          Style    `json:"style"`
}

// Outcome is the headline call: who wins, how sure, and how.
type Outcome struct {
	Winner         string         `json:"winner"`
	Confidence     float64        `json:"confidence"`
	ConfidenceTier ConfidenceTier `json:"confidence_tier"`
	LikelyFinish   FinishMethod   `json:"likely_finish"`
	CloseFight     bool           `json:"close_fight"`
	FinishAnalysis FinishAnalysis `json:"finish_analysis"`
}

// ConfidenceTier buckets the winner's probability for display.
type ConfidenceTier struct {
	Tier  string `json:"tier"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// FinishAnalysis is the round-by-round finish curve for the favoured fighter.
type FinishAnalysis struct {
	RoundProbabilities     []RoundProbability `json:"round_probabilities"`
	TotalFinishProbability float64            `json:"total_finish_probability"`
	DecisionProbability    float64            `json:"decision_probability"`
	LikelyOutcome          string             `json:"likely_outcome"`
}

// RoundProbability is the chance (0-100) the fight ends in a given round.
type RoundProbability struct {
	Round       int     `json:"round"`
	Probability float64 `json:"probability"`
}

// Analysis carries the matchup context used to reach the prediction.
type Analysis struct {
	WeightClass      WeightClass      `json:"weight_class"`
	StyleMatchup     string           `json:"style_matchup"`
	Fighter1Style    Style            `json:"fighter1_style"`
	Fighter2Style    Style            `json:"fighter2_style"`
	StyleMultipliers StyleMultipliers `json:"style_multipliers"`
	KeyAdvantages    []KeyAdvantage   `json:"key_advantages"`
	NumRounds        int              `json:"num_rounds"`
}

// StyleMultipliers are the matchup multipliers applied to each fighter's total.
type StyleMultipliers struct {
	Fighter1 float64 `json:"fighter1"`
	Fighter2 float64 `json:"fighter2"`
}

// KeyAdvantage is one notable statistical edge. Percent is only set for edges that carry
// a magnitude.
type KeyAdvantage struct {
	Type    string  `json:"type"`
	Leader  string  `json:"leader"`
	Value   string  `json:"value"`
	Percent float64 `json:"percent,omitempty"`
}

// Winner returns the analysis of the predicted winner.
func (p *Prediction) Winner() FighterAnalysis {
	if p.Fighter1.WinProbability >= p.Fighter2.WinProbability {
		return p.Fighter1
	}
	return p.Fighter2
}

// MeetsThreshold checks if the winner's confidence meets the given threshold (0-100).
func (p *Prediction) MeetsThreshold(threshold float64) bool {
	return p.Outcome.Confidence >= threshold
}

// Round1 rounds v to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
