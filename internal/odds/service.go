package odds

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fight-predictor/internal/logger"
	"github.com/yourusername/fight-predictor/internal/metrics"
	"github.com/yourusername/fight-predictor/internal/models"
)

// DefaultCacheTTL is how long a fetched board is reused.
const DefaultCacheTTL = 5 * time.Minute

// Variance labels of a model vs market comparison.
const (
	AssessmentAligned     = "Aligned with Vegas"
	AssessmentSlight      = "Slight variance"
	AssessmentSignificant = "Significant variance"
)

// Service looks up market prices for pairings, reusing the board between calls.
type Service struct {
	client *Client
	cache  *Cache
	logger *logger.OddsLogger
}

// NewService wires a client to a board cache.
func NewService(client *Client, cache *Cache, log *logrus.Logger) *Service {
	if cache == nil {
		cache = NewCache(DefaultCacheTTL, nil)
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Service{
		client: client,
		cache:  cache,
		logger: logger.NewOddsLogger(log),
	}
}

// Enabled reports whether the feed can be queried at all.
func (s *Service) Enabled() bool {
	return s.client != nil && s.client.HasKey()
}

// Events returns the board, fetching it when the cache is cold or stale.
func (s *Service) Events(ctx context.Context) ([]Event, error) {
	if events, ok := s.cache.Get(); ok {
		metrics.RecordOddsCacheHit()
		s.logger.LogOddsFetch(len(events), true, "", 0)
		return events, nil
	}
	return s.fetch(ctx)
}

// Refresh refetches the board regardless of cache state.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.fetch(ctx)
	return err
}

func (s *Service) fetch(ctx context.Context) ([]Event, error) {
	if !s.Enabled() {
		return nil, ErrAPIKeyMissing
	}

	start := time.Now()
	events, usage, err := s.client.FetchEvents(ctx)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordOddsRequest("error", duration.Seconds())
		s.logger.LogOddsError("fetch_events", err)
		return nil, err
	}

	metrics.RecordOddsRequest("ok", duration.Seconds())
	recordRemaining(usage)
	s.cache.Set(events)
	s.logger.LogOddsFetch(len(events), false, usage.Remaining, float64(duration.Milliseconds()))
	return events, nil
}

// FindFightOdds looks the pairing up on the board. A pairing with no market returns
// Found=false and a nil error; an error means the board itself was unavailable.
func (s *Service) FindFightOdds(ctx context.Context, fighter1, fighter2 string) (models.FightOdds, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return models.FightOdds{Found: false}, err
	}

	result := FindInEvents(events, fighter1, fighter2)
	s.logger.LogOddsLookup(fighter1, fighter2, result.Found, result.Bookmaker)
	return result, nil
}

// CheckUsage reports the remaining request quota.
func (s *Service) CheckUsage(ctx context.Context) (models.APIUsage, error) {
	if !s.Enabled() {
		return models.APIUsage{}, ErrAPIKeyMissing
	}
	usage, err := s.client.Usage(ctx)
	if err != nil {
		s.logger.LogOddsError("check_usage", err)
		return models.APIUsage{}, err
	}
	recordRemaining(usage)
	return usage, nil
}

// IsUnavailable reports whether err means the market could not be consulted.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrOddsUnavailable) || errors.Is(err, ErrAPIKeyMissing)
}

func recordRemaining(usage models.APIUsage) {
	if remaining, err := strconv.ParseFloat(usage.Remaining, 64); err == nil {
		metrics.UpdateOddsRequestsRemaining(remaining)
	}
}

// Compare sets the model's win probabilities against the market's implied ones.
func Compare(p *models.Prediction, fight models.FightOdds) models.OddsComparison {
	if p == nil || !fight.Found {
		return models.OddsComparison{}
	}
	return models.OddsComparison{
		Fighter1: compareSide(p.Fighter1.Name, p.Fighter1.WinProbability, fight.Fighter1.ImpliedProbability),
		Fighter2: compareSide(p.Fighter2.Name, p.Fighter2.WinProbability, fight.Fighter2.ImpliedProbability),
	}
}

func compareSide(name string, model, implied float64) models.ProbabilityComparison {
	diff := model - implied
	return models.ProbabilityComparison{
		Name:               name,
		ModelProbability:   model,
		ImpliedProbability: implied,
		Difference:         diff,
		Assessment:         Assess(math.Abs(diff)),
	}
}

// Assess labels an absolute probability gap in percentage points.
func Assess(gap float64) string {
	switch {
	case gap < 5:
		return AssessmentAligned
	case gap < 10:
		return AssessmentSlight
	default:
		return AssessmentSignificant
	}
}
