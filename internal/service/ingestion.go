package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/fight-predictor/internal/datasource"
	"github.com/yourusername/fight-predictor/internal/logger"
	"github.com/yourusername/fight-predictor/internal/metrics"
	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/repository"
	"github.com/yourusername/fight-predictor/internal/roster"
)

// IngestionService loads a roster source into the fighter store and the live roster
type IngestionService struct {
	source     datasource.FighterSource
	repo       repository.FighterRepository
	roster     *roster.Roster
	validator  *DataValidator
	normalizer *DataNormalizer
	audit      *logger.AuditLogger
	logger     *logrus.Entry
}

// NewIngestionService creates a new ingestion service. roster may be nil when only the
// store should be updated.
func NewIngestionService(
	source datasource.FighterSource,
	repo repository.FighterRepository,
	live *roster.Roster,
	log *logrus.Logger,
) *IngestionService {
	return &IngestionService{
		source:     source,
		repo:       repo,
		roster:     live,
		validator:  NewDataValidator(log),
		normalizer: NewDataNormalizer(log),
		audit:      logger.NewAuditLogger(log),
		logger:     log.WithField("component", "ingestion"),
	}
}

// Ingest fetches the roster, keeps the valid records, and replaces the stored roster.
// A fetch or store failure leaves the previous roster untouched.
func (s *IngestionService) Ingest(ctx context.Context) (*IngestionMetrics, error) {
	stats := NewIngestionMetrics(s.source.Name())
	err := s.ingest(ctx, stats)
	stats.Finish()

	metrics.RecordIngestion(stats.Source, err, stats.StoredFighters, stats.ValidationErrors, stats.Duration.Seconds())
	if err != nil {
		s.logger.WithError(err).WithField("source", stats.Source).Error("Roster ingestion failed")
		return stats, err
	}

	s.audit.LogRosterIngested(stats.Source, stats.StoredFighters, stats.Skipped())
	s.logger.Info(stats.String())
	return stats, nil
}

func (s *IngestionService) ingest(ctx context.Context, stats *IngestionMetrics) error {
	fighters, err := s.source.FetchFighters(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch fighters: %w", err)
	}
	stats.RecordFetched(len(fighters))

	valid := make([]models.Fighter, 0, len(fighters))
	for _, raw := range fighters {
		f := s.normalizer.NormalizeFighter(raw)

		result := s.validator.ValidateFighter(&f)
		if !result.Valid() {
			stats.RecordValidationError()
			s.logger.WithFields(logrus.Fields{
				"fighter": f.Name,
				"errors":  result.Errors,
			}).Warn("Fighter validation failed")
			continue
		}
		stats.RecordWarnings(len(result.Warnings))
		valid = append(valid, f)
	}

	stored, err := s.repo.ReplaceAll(ctx, valid)
	if err != nil {
		return fmt.Errorf("failed to store fighters: %w", err)
	}
	stats.RecordStored(len(valid), stored)

	if s.roster != nil {
		metrics.UpdateRosterSize(s.roster.Replace(valid))
	}
	return nil
}
