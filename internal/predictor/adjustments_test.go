package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/fight-predictor/internal/models"
)

func intPtr(v int) *int { return &v }

func TestDetectWeightClass(t *testing.T) {
	tests := []struct {
		weight   float64
		expected models.WeightClass
	}{
		{0, models.Flyweight},
		{125, models.Flyweight},
		{125.5, models.Bantamweight},
		{135, models.Bantamweight},
		{145, models.Featherweight},
		{155, models.Lightweight},
		{170, models.Welterweight},
		{185, models.Middleweight},
		{205, models.LightHeavyweight},
		{206, models.Heavyweight},
		{265, models.Heavyweight},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectWeightClass(tt.weight), "weight %v", tt.weight)
	}
}

func TestAdjustmentForUnknownClass(t *testing.T) {
	assert.Equal(t, WeightClassAdjustment{Striking: 1, Grappling: 1, Submissions: 1}, AdjustmentFor("Catchweight"))
	assert.Equal(t, 1.25, AdjustmentFor(models.Heavyweight).Striking)
}

func TestStanceAdvantage(t *testing.T) {
	tests := []struct {
		name     string
		own      string
		other    string
		expected float64
	}{
		{"southpaw vs orthodox", "Southpaw", "Orthodox", 3},
		{"orthodox vs southpaw", "Orthodox", "Southpaw", -2},
		{"switch", "Switch", "Orthodox", 2},
		{"mirror", "Orthodox", "Orthodox", 0},
		{"unknown", "", "Southpaw", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stanceAdvantage(&models.Fighter{Stance: tt.own}, &models.Fighter{Stance: tt.other})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifyStyle(t *testing.T) {
	assert.Equal(t, models.StyleStriker, ClassifyStyle(92.5, 12.5))
	assert.Equal(t, models.StyleGrappler, ClassifyStyle(57.5, 97.5))
	assert.Equal(t, models.StyleBalanced, ClassifyStyle(67.5, 87.5))
	assert.Equal(t, models.StyleStriker, ClassifyStyle(50, 0))
}

func TestStyleMatchup(t *testing.T) {
	tests := []struct {
		s1, s2   models.Style
		expected models.StyleMultipliers
	}{
		{models.StyleStriker, models.StyleGrappler, models.StyleMultipliers{Fighter1: 0.95, Fighter2: 1.05}},
		{models.StyleGrappler, models.StyleStriker, models.StyleMultipliers{Fighter1: 1.05, Fighter2: 0.95}},
		{models.StyleBalanced, models.StyleStriker, models.StyleMultipliers{Fighter1: 1.03, Fighter2: 0.97}},
		{models.StyleGrappler, models.StyleBalanced, models.StyleMultipliers{Fighter1: 0.97, Fighter2: 1.03}},
		{models.StyleStriker, models.StyleStriker, models.StyleMultipliers{Fighter1: 1, Fighter2: 1}},
		{models.StyleBalanced, models.StyleBalanced, models.StyleMultipliers{Fighter1: 1, Fighter2: 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StyleMatchup(tt.s1, tt.s2), "%s vs %s", tt.s1, tt.s2)
	}
}

func TestAgeFactor(t *testing.T) {
	tests := []struct {
		age      *int
		expected float64
	}{
		{nil, 1.0},
		{intPtr(0), 1.0},
		{intPtr(22), 1.0},
		{intPtr(23), 1.03},
		{intPtr(27), 1.03},
		{intPtr(28), 1.08},
		{intPtr(32), 1.08},
		{intPtr(33), 1.0},
		{intPtr(35), 0.95},
		{intPtr(37), 0.95},
		{intPtr(38), 0.90},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AgeFactor(tt.age))
	}
}

func TestFightLengthAdjustment(t *testing.T) {
	assert.Equal(t, 1.0, fightLengthAdjustment(stats{total: 40}, 3))
	assert.InDelta(t, 1.05, fightLengthAdjustment(stats{total: 40}, 5), 1e-12)
	assert.InDelta(t, 1.025, fightLengthAdjustment(stats{total: 10}, 5), 1e-12)
	assert.Equal(t, 1.0, fightLengthAdjustment(stats{}, 5))
}

func TestConfidenceTierFor(t *testing.T) {
	assert.Equal(t, "Lock", ConfidenceTierFor(75).Tier)
	assert.Equal(t, "Strong Favorite", ConfidenceTierFor(74.9).Tier)
	assert.Equal(t, "Strong Favorite", ConfidenceTierFor(65).Tier)
	assert.Equal(t, "Slight Favorite", ConfidenceTierFor(55).Tier)
	assert.Equal(t, "Toss-up", ConfidenceTierFor(54.99).Tier)
	assert.Equal(t, "#dc2626", ConfidenceTierFor(90).Color)
}
