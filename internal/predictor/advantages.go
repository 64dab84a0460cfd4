package predictor

import (
	"fmt"
	"math"

	"github.com/yourusername/fight-predictor/internal/models"
)

// scoreSide is the per-fighter input to key advantage detection.
type scoreSide struct {
	name       string
	striking   float64
	grappling  float64
	ageFactor  float64
	finishRate float64
}

// keyAdvantages lists the notable edges in a fixed order. Each check is independent.
func keyAdvantages(f1, f2 scoreSide) []models.KeyAdvantage {
	advantages := make([]models.KeyAdvantage, 0, 4)

	if adv, ok := scoreEdge("Striking Edge", f1.name, f2.name, f1.striking, f2.striking); ok {
		advantages = append(advantages, adv)
	}
	if adv, ok := scoreEdge("Grappling Advantage", f1.name, f2.name, f1.grappling, f2.grappling); ok {
		advantages = append(advantages, adv)
	}

	if f1.ageFactor > f2.ageFactor && f1.ageFactor > 1.0 {
		advantages = append(advantages, models.KeyAdvantage{Type: "Prime Factor", Leader: f1.name, Value: "In Prime"})
	} else if f2.ageFactor > f1.ageFactor && f2.ageFactor > 1.0 {
		advantages = append(advantages, models.KeyAdvantage{Type: "Prime Factor", Leader: f2.name, Value: "In Prime"})
	}

	if diff := f1.finishRate - f2.finishRate; math.Abs(diff) > 10 {
		leader := f2.name
		if diff > 0 {
			leader = f1.name
		}
		advantages = append(advantages, models.KeyAdvantage{Type: "Finish Rate", Leader: leader, Value: "Higher"})
	}

	return advantages
}

// scoreEdge reports a gap of more than 5 points as a percentage of the larger score.
func scoreEdge(label, name1, name2 string, score1, score2 float64) (models.KeyAdvantage, bool) {
	diff := score1 - score2
	if math.Abs(diff) <= 5 {
		return models.KeyAdvantage{}, false
	}

	leader := name2
	if diff > 0 {
		leader = name1
	}

	denom := math.Max(score1, score2)
	if denom == 0 {
		denom = math.Max(math.Abs(score1), math.Abs(score2))
	}
	percent := math.Abs(diff / denom * 100)

	return models.KeyAdvantage{
		Type:    label,
		Leader:  leader,
		Value:   fmt.Sprintf("+%d%%", int(math.Round(percent))),
		Percent: percent,
	}, true
}
