package models

import "time"

// FightOdds is the market price for a pairing. Found is false when the feed has no
// matching event; the other fields are then zero.
type FightOdds struct {
	Found        bool        `json:"found"`
	EventName    string      `json:"event_name,omitempty"`
	CommenceTime time.Time   `json:"commence_time,omitempty"`
	Bookmaker    string      `json:"bookmaker,omitempty"`
	Fighter1     FighterOdds `json:"fighter1"`
	Fighter2     FighterOdds `json:"fighter2"`
}

// FighterOdds is one side of a head-to-head market.
type FighterOdds struct {
	Name               string  `json:"name"`
	AmericanOdds       int     `json:"american_odds"`
	DecimalOdds        float64 `json:"decimal_odds"`
	ImpliedProbability float64 `json:"implied_probability"`
}

// OddsComparison sets the model's probabilities against the market's.
type OddsComparison struct {
	Fighter1 ProbabilityComparison `json:"fighter1"`
	Fighter2 ProbabilityComparison `json:"fighter2"`
}

// ProbabilityComparison is the model vs market view for one fighter.
type ProbabilityComparison struct {
	Name               string  `json:"name"`
	ModelProbability   float64 `json:"model_probability"`
	ImpliedProbability float64 `json:"implied_probability"`
	Difference         float64 `json:"difference"`
	Assessment         string  `json:"assessment"`
}

// APIUsage reports the remaining request quota of the odds feed.
type APIUsage struct {
	Remaining string `json:"remaining"`
	Used      string `json:"used"`
}
