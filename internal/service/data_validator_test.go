package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/fight-predictor/internal/models"
)

func TestValidateFighter(t *testing.T) {
	v := NewDataValidator(quietLogger())

	tests := []struct {
		name         string
		fighter      models.Fighter
		expectValid  bool
		warningCount int
	}{
		{
			name:        "complete record",
			fighter:     testFighters()[0],
			expectValid: true,
		},
		{
			name:        "missing name",
			fighter:     models.Fighter{Wins: 3},
			expectValid: false,
		},
		{
			name:        "negative losses",
			fighter:     models.Fighter{Name: "X", Losses: -2},
			expectValid: false,
		},
		{
			name:        "placeholder statistics are not warnings",
			fighter:     models.Fighter{Name: "X", Reach: "--", StrikingAccuracy: ""},
			expectValid: true,
		},
		{
			name:         "unreadable statistics warn",
			fighter:      models.Fighter{Name: "X", Height: "tall", TakedownAvg: "n/a", DOB: "someday"},
			expectValid:  true,
			warningCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateFighter(&tt.fighter)
			assert.Equal(t, tt.expectValid, result.Valid(), "errors: %v", result.Errors)
			assert.Len(t, result.Warnings, tt.warningCount)
		})
	}
}

func TestNormalizeFighter(t *testing.T) {
	n := NewDataNormalizer(quietLogger())

	out := n.NormalizeFighter(models.Fighter{
		Name:             "  Jon   Jones ",
		Stance:           " SOUTHPAW",
		StrikingAccuracy: " 57% ",
		LastFights:       []models.FightHistory{{Result: " w ", Opponent: "Stipe  Miocic"}},
	})

	assert.Equal(t, "Jon Jones", out.Name)
	assert.Equal(t, "Southpaw", out.Stance)
	assert.Equal(t, "57%", out.StrikingAccuracy)
	assert.Equal(t, "W", out.LastFights[0].Result)
	assert.Equal(t, "Stipe Miocic", out.LastFights[0].Opponent)

	assert.Equal(t, "Karate", n.NormalizeFighter(models.Fighter{Stance: "Karate"}).Stance)
}
