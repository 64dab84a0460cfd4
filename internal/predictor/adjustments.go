package predictor

import (
	"math"
	"strings"

	"github.com/yourusername/fight-predictor/internal/models"
)

// WeightClassAdjustment scales striking and grappling for the division. Submissions is
// declared for completeness and not used by the scoring path.
type WeightClassAdjustment struct {
	Striking    float64
	Grappling   float64
	Submissions float64
}

var weightClassAdjustments = map[models.WeightClass]WeightClassAdjustment{
	models.Flyweight:        {Striking: 1.0, Grappling: 1.15, Submissions: 1.2},
	models.Bantamweight:     {Striking: 1.05, Grappling: 1.15, Submissions: 1.15},
	models.Featherweight:    {Striking: 1.1, Grappling: 1.1, Submissions: 1.1},
	models.Lightweight:      {Striking: 1.1, Grappling: 1.05, Submissions: 1.15},
	models.Welterweight:     {Striking: 1.1, Grappling: 1.0, Submissions: 1.0},
	models.Middleweight:     {Striking: 1.15, Grappling: 0.95, Submissions: 0.9},
	models.LightHeavyweight: {Striking: 1.2, Grappling: 0.9, Submissions: 0.8},
	models.Heavyweight:      {Striking: 1.25, Grappling: 0.85, Submissions: 0.7},
}

// DetectWeightClass maps a weight in pounds to its division.
func DetectWeightClass(weight float64) models.WeightClass {
	switch {
	case weight <= 125:
		return models.Flyweight
	case weight <= 135:
		return models.Bantamweight
	case weight <= 145:
		return models.Featherweight
	case weight <= 155:
		return models.Lightweight
	case weight <= 170:
		return models.Welterweight
	case weight <= 185:
		return models.Middleweight
	case weight <= 205:
		return models.LightHeavyweight
	default:
		return models.Heavyweight
	}
}

// AdjustmentFor returns the multipliers for a division, neutral for unknown ones.
func AdjustmentFor(class models.WeightClass) WeightClassAdjustment {
	if adj, ok := weightClassAdjustments[class]; ok {
		return adj
	}
	return WeightClassAdjustment{Striking: 1.0, Grappling: 1.0, Submissions: 1.0}
}

// stanceAdvantage is the additive bonus fighter earns against opponent. It is not
// symmetric: southpaw over orthodox is +3 while orthodox against southpaw is -2.
func stanceAdvantage(fighter, opponent *models.Fighter) float64 {
	own := strings.ToLower(fighter.Stance)
	other := strings.ToLower(opponent.Stance)

	switch {
	case strings.Contains(own, "southpaw") && strings.Contains(other, "orthodox"):
		return 3
	case strings.Contains(own, "orthodox") && strings.Contains(other, "southpaw"):
		return -2
	case strings.Contains(own, "switch"):
		return 2
	default:
		return 0
	}
}

// ClassifyStyle labels a fighter from raw striking and grappling scores.
func ClassifyStyle(striking, grappling float64) models.Style {
	ratio := striking / (grappling + 1)
	switch {
	case ratio > 1.5:
		return models.StyleStriker
	case ratio < 0.67:
		return models.StyleGrappler
	default:
		return models.StyleBalanced
	}
}

// StyleMatchup returns the multipliers for a pairing of styles. Grapplers edge strikers,
// and balanced fighters edge specialists.
func StyleMatchup(style1, style2 models.Style) models.StyleMultipliers {
	switch {
	case style1 == models.StyleStriker && style2 == models.StyleGrappler:
		return models.StyleMultipliers{Fighter1: 0.95, Fighter2: 1.05}
	case style1 == models.StyleGrappler && style2 == models.StyleStriker:
		return models.StyleMultipliers{Fighter1: 1.05, Fighter2: 0.95}
	case style1 == models.StyleBalanced && style2 != models.StyleBalanced:
		return models.StyleMultipliers{Fighter1: 1.03, Fighter2: 0.97}
	case style2 == models.StyleBalanced && style1 != models.StyleBalanced:
		return models.StyleMultipliers{Fighter1: 0.97, Fighter2: 1.03}
	default:
		return models.StyleMultipliers{Fighter1: 1.0, Fighter2: 1.0}
	}
}

// AgeFactor scales a fighter's total by where they sit in their career arc.
// A nil age is neutral.
func AgeFactor(age *int) float64 {
	if age == nil || *age <= 0 {
		return 1.0
	}
	switch a := *age; {
	case a >= 28 && a <= 32:
		return 1.08
	case a >= 23 && a <= 27:
		return 1.03
	case a >= 35 && a <= 37:
		return 0.95
	case a > 37:
		return 0.90
	default:
		return 1.0
	}
}

// fightLengthAdjustment rewards experience in five-round fights. Three-round fights are
// neutral.
func fightLengthAdjustment(s stats, numRounds int) float64 {
	if numRounds != 5 {
		return 1.0
	}
	experience := math.Min(float64(s.total)/20, 1)
	return 1.0 + (experience * 0.05)
}

// ConfidenceTierFor buckets a winner probability (0-100).
func ConfidenceTierFor(probability float64) models.ConfidenceTier {
	switch {
	case probability >= 75:
		return models.ConfidenceTier{Tier: "Lock", Color: "#dc2626", Icon: "🔒"}
	case probability >= 65:
		return models.ConfidenceTier{Tier: "Strong Favorite", Color: "#ea580c", Icon: "💪"}
	case probability >= 55:
		return models.ConfidenceTier{Tier: "Slight Favorite", Color: "#ca8a04", Icon: "👍"}
	default:
		return models.ConfidenceTier{Tier: "Toss-up", Color: "#6b7280", Icon: "🤝"}
	}
}
