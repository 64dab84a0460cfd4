package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/fight-predictor/internal/logger"
	"github.com/yourusername/fight-predictor/internal/metrics"
	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/repository"
)

// FightCardService manages the user's list of predicted fights
type FightCardService struct {
	repo        repository.FightCardRepository
	predictions *PredictionService
	validate    *validator.Validate
	audit       *logger.AuditLogger
	now         func() time.Time
}

// NewFightCardService creates a fight card service
func NewFightCardService(repo repository.FightCardRepository, predictions *PredictionService, log *logrus.Logger) *FightCardService {
	return &FightCardService{
		repo:        repo,
		predictions: predictions,
		validate:    validator.New(),
		audit:       logger.NewAuditLogger(log),
		now:         time.Now,
	}
}

// Add predicts the pairing and stores it on the card. With simulate set, one simulation
// is stored alongside.
func (s *FightCardService) Add(ctx context.Context, name1, name2 string, numRounds int, simulate bool) (*models.FightCardEntry, error) {
	rounds, err := s.predictions.ResolveRounds(numRounds)
	if err != nil {
		return nil, err
	}

	prediction, err := s.predictions.Predict(ctx, name1, name2, rounds)
	if err != nil {
		return nil, err
	}

	entry := &models.FightCardEntry{
		ID:           uuid.New(),
		Fighter1Name: prediction.Fighter1.Name,
		Fighter2Name: prediction.Fighter2.Name,
		NumRounds:    rounds,
		Prediction:   prediction,
		CreatedAt:    s.now().UTC(),
	}
	if simulate {
		entry.Simulation, err = s.predictions.Simulate(ctx, name1, name2, rounds)
		if err != nil {
			return nil, err
		}
	}

	if err := s.validate.Struct(entry); err != nil {
		return nil, fmt.Errorf("invalid fight card entry: %w", err)
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	metrics.RecordCardEntry("add")
	s.audit.LogCardEntryAdded(entry.ID.String(), entry.Fighter1Name, entry.Fighter2Name,
		prediction.Outcome.Winner, prediction.Outcome.Confidence, entry.CreatedAt)
	return entry, nil
}

// Remove deletes an entry. Missing entries return models.ErrNotFound.
func (s *FightCardService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordCardEntry("remove")
	s.audit.LogCardEntryRemoved(id.String())
	return nil
}

// Get returns one entry
func (s *FightCardService) Get(ctx context.Context, id uuid.UUID) (*models.FightCardEntry, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the card in insertion order with the lock of the night marked
func (s *FightCardService) List(ctx context.Context) (*models.FightCard, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	card := &models.FightCard{Entries: entries}
	if lock := LockOfTheNight(entries); lock != nil {
		id := lock.ID
		card.LockOfTheNight = &id
	}
	return card, nil
}

// Lock returns the most confident entry, or models.ErrNotFound for an empty card
func (s *FightCardService) Lock(ctx context.Context) (*models.FightCardEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	lock := LockOfTheNight(entries)
	if lock == nil {
		return nil, models.ErrNotFound
	}
	return lock, nil
}

// LockOfTheNight picks the entry with the highest winner confidence. On a tie the
// earlier entry is kept.
func LockOfTheNight(entries []*models.FightCardEntry) *models.FightCardEntry {
	var best *models.FightCardEntry
	for _, e := range entries {
		if best == nil || e.Confidence() > best.Confidence() {
			best = e
		}
	}
	return best
}
