package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yourusername/fight-predictor/internal/models"
)

func fighterKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// cardSnapshot is the serialized part of a fight card entry.
type cardSnapshot struct {
	prediction []byte
	simulation []byte
}

func encodeCardEntry(entry *models.FightCardEntry) (cardSnapshot, error) {
	prediction, err := json.Marshal(entry.Prediction)
	if err != nil {
		return cardSnapshot{}, fmt.Errorf("failed to encode prediction: %w", err)
	}

	var simulation []byte
	if entry.Simulation != nil {
		simulation, err = json.Marshal(entry.Simulation)
		if err != nil {
			return cardSnapshot{}, fmt.Errorf("failed to encode simulation: %w", err)
		}
	}
	return cardSnapshot{prediction: prediction, simulation: simulation}, nil
}

func decodeCardEntry(entry *models.FightCardEntry, prediction, simulation []byte) error {
	entry.Prediction = &models.Prediction{}
	if err := json.Unmarshal(prediction, entry.Prediction); err != nil {
		return fmt.Errorf("failed to decode prediction: %w", err)
	}
	if len(simulation) > 0 {
		entry.Simulation = &models.Simulation{}
		if err := json.Unmarshal(simulation, entry.Simulation); err != nil {
			return fmt.Errorf("failed to decode simulation: %w", err)
		}
	}
	return nil
}

// dedupeFighters drops nameless records and keeps the first record per name.
func dedupeFighters(fighters []models.Fighter) []models.Fighter {
	seen := make(map[string]struct{}, len(fighters))
	out := make([]models.Fighter, 0, len(fighters))
	for _, f := range fighters {
		k := fighterKey(f.Name)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, f)
	}
	return out
}
