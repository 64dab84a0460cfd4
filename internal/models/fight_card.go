package models

import (
	"time"

	"github.com/google/uuid"
)

// FightCardEntry is a user-curated predicted matchup.
type FightCardEntry struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	Fighter1Name string      `db:"fighter1_name" json:"fighter1_name" validate:"required"`
	Fighter2Name string      `db:"fighter2_name" json:"fighter2_name" validate:"required"`
	NumRounds    int         `db:"num_rounds" json:"num_rounds" validate:"oneof=3 5"`
	Prediction   *Prediction `db:"prediction" json:"prediction" validate:"required"`
	Simulation   *Simulation `db:"simulation" json:"simulation,omitempty"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

// Confidence returns the winner's probability of the stored prediction.
func (e *FightCardEntry) Confidence() float64 {
	if e.Prediction == nil {
		return 0
	}
	return e.Prediction.Outcome.Confidence
}

// FightCard is the ordered list of entries with the lock of the night resolved.
type FightCard struct {
	Entries        []*FightCardEntry `json:"entries"`
	LockOfTheNight *uuid.UUID        `json:"lock_of_the_night,omitempty"`
}
