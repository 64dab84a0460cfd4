package service

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fight-predictor/internal/models"
)

// DataNormalizer cleans roster records into a consistent shape before storage
type DataNormalizer struct {
	stanceMap map[string]string // lower-cased source stance to canonical stance
	logger    *logrus.Entry
}

// NewDataNormalizer creates a new data normalizer
func NewDataNormalizer(logger *logrus.Logger) *DataNormalizer {
	return &DataNormalizer{
		stanceMap: buildStanceMap(),
		logger:    logger.WithField("component", "normalizer"),
	}
}

// NormalizeFighter returns a cleaned copy of f. Statistic text is only trimmed; a value
// that does not parse stays as it is so scoring treats it the same way it would at source.
func (n *DataNormalizer) NormalizeFighter(f models.Fighter) models.Fighter {
	out := f
	out.Name = collapseSpaces(f.Name)
	out.Nickname = strings.TrimSpace(f.Nickname)
	out.Stance = n.normalizeStance(f.Stance)

	for _, field := range []*string{
		&out.Height, &out.Weight, &out.Reach, &out.DOB,
		&out.SigStrikesLandedPerMin, &out.SigStrikesAbsorbedPerMin,
		&out.StrikingAccuracy, &out.StrikingDefense,
		&out.TakedownAvg, &out.TakedownAccuracy, &out.TakedownDefense,
		&out.SubmissionAvg,
	} {
		*field = strings.TrimSpace(*field)
	}

	if len(f.LastFights) > 0 {
		out.LastFights = make([]models.FightHistory, len(f.LastFights))
		for i, h := range f.LastFights {
			out.LastFights[i] = models.FightHistory{
				Result:   strings.ToUpper(strings.TrimSpace(h.Result)),
				Opponent: collapseSpaces(h.Opponent),
				Method:   strings.TrimSpace(h.Method),
				Round:    strings.TrimSpace(h.Round),
			}
		}
	}
	return out
}

func (n *DataNormalizer) normalizeStance(stance string) string {
	trimmed := strings.TrimSpace(stance)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := n.stanceMap[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	n.logger.WithField("stance", trimmed).Debug("Unknown stance kept as-is")
	return trimmed
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func buildStanceMap() map[string]string {
	return map[string]string{
		"orthodox":    "Orthodox",
		"southpaw":    "Southpaw",
		"switch":      "Switch",
		"open stance": "Open Stance",
		"sideways":    "Sideways",
	}
}
