package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/yourusername/fight-predictor/internal/models"
)

// FighterRepository persists the roster. FetchFighters lets a repository act as a
// roster source.
type FighterRepository interface {
	ReplaceAll(ctx context.Context, fighters []models.Fighter) (int, error)
	GetByName(ctx context.Context, name string) (*models.Fighter, error)
	FetchFighters(ctx context.Context) ([]models.Fighter, error)
	Count(ctx context.Context) (int, error)
}

// FightCardRepository persists the user's fight card.
type FightCardRepository interface {
	Create(ctx context.Context, entry *models.FightCardEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FightCardEntry, error)
	List(ctx context.Context) ([]*models.FightCardEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
