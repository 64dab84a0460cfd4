package models

import (
	"fmt"
	"strings"
)

// Fighter is a competitor record as supplied by the roster source. Statistics are kept as
// the free text the source emits ("47%", "71.0 in"); internal/parse turns them into numbers.
type Fighter struct {
	Name     string `json:"name" validate:"required"`
	Nickname string `json:"nickname,omitempty"`

	Wins   int `json:"wins" validate:"gte=0"`
	Losses int `json:"losses" validate:"gte=0"`
	Draws  int `json:"draws" validate:"gte=0"`

	Height string `json:"height,omitempty"`
	Weight string `json:"weight,omitempty"`
	Reach  string `json:"reach,omitempty"`
	Stance string `json:"stance,omitempty"`
	DOB    string `json:"dob,omitempty"`

	SigStrikesLandedPerMin   string `json:"sig_strikes_landed_per_min,omitempty"`
	SigStrikesAbsorbedPerMin string `json:"sig_strikes_absorbed_per_min,omitempty"`
	StrikingAccuracy         string `json:"striking_accuracy,omitempty"`
	StrikingDefense          string `json:"striking_defense,omitempty"`
	TakedownAvg              string `json:"takedown_avg,omitempty"`
	TakedownAccuracy         string `json:"takedown_accuracy,omitempty"`
	TakedownDefense          string `json:"takedown_defense,omitempty"`
	SubmissionAvg            string `json:"submission_avg,omitempty"`

	LastFights []FightHistory `json:"last_3_fights,omitempty"`
}

// FightHistory is one entry of a fighter's recent bouts.
type FightHistory struct {
	Result   string `json:"result"`
	Opponent string `json:"opponent"`
	Method   string `json:"method,omitempty"`
	Round    string `json:"round,omitempty"`
}

// TotalFights returns wins + losses + draws.
func (f *Fighter) TotalFights() int {
	return f.Wins + f.Losses + f.Draws
}

// Record formats the professional record as W-L-D.
func (f *Fighter) Record() string {
	return fmt.Sprintf("%d-%d-%d", f.Wins, f.Losses, f.Draws)
}

// MatchesName reports whether the fighter's name contains query, ignoring case.
func (f *Fighter) MatchesName(query string) bool {
	return strings.Contains(strings.ToLower(f.Name), strings.ToLower(strings.TrimSpace(query)))
}
