package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/fight-predictor/internal/database"
	"github.com/yourusername/fight-predictor/internal/models"
)

// PostgresFighterRepository implements FighterRepository for PostgreSQL
type PostgresFighterRepository struct {
	db *database.DB
}

// NewPostgresFighterRepository creates a new fighter repository
func NewPostgresFighterRepository(db *database.DB) *PostgresFighterRepository {
	return &PostgresFighterRepository{db: db}
}

// ReplaceAll swaps the stored roster, bulk loading it with COPY
func (r *PostgresFighterRepository) ReplaceAll(ctx context.Context, fighters []models.Fighter) (int, error) {
	unique := dedupeFighters(fighters)
	columns := []string{"name", "data", "updated_at"}

	now := time.Now()
	rows := make([][]interface{}, len(unique))
	for i, f := range unique {
		data, err := json.Marshal(f)
		if err != nil {
			return 0, fmt.Errorf("failed to encode fighter %q: %w", f.Name, err)
		}
		rows[i] = []interface{}{fighterKey(f.Name), data, now}
	}

	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM fighters`); err != nil {
			return fmt.Errorf("failed to clear fighters: %w", err)
		}

		count, err := tx.CopyFrom(ctx, pgx.Identifier{"fighters"}, columns, pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("failed to batch insert fighters: %w", err)
		}
		if count != int64(len(rows)) {
			return fmt.Errorf("inserted %d rows, expected %d", count, len(rows))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(unique), nil
}

// GetByName retrieves a fighter by name
func (r *PostgresFighterRepository) GetByName(ctx context.Context, name string) (*models.Fighter, error) {
	var data []byte
	err := r.db.GetPool().QueryRow(ctx, `SELECT data FROM fighters WHERE name = $1`, fighterKey(name)).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fighter: %w", err)
	}

	f := &models.Fighter{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to decode fighter: %w", err)
	}
	return f, nil
}

// FetchFighters returns the stored roster ordered by name
func (r *PostgresFighterRepository) FetchFighters(ctx context.Context) ([]models.Fighter, error) {
	rows, err := r.db.GetPool().Query(ctx, `SELECT data FROM fighters ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fighters: %w", err)
	}
	defer rows.Close()

	var fighters []models.Fighter
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan fighter: %w", err)
		}
		var f models.Fighter
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode fighter: %w", err)
		}
		fighters = append(fighters, f)
	}
	return fighters, rows.Err()
}

// Count returns the number of stored fighters
func (r *PostgresFighterRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetPool().QueryRow(ctx, `SELECT COUNT(*) FROM fighters`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count fighters: %w", err)
	}
	return n, nil
}

const errScanCardEntry = "failed to scan fight card entry: %w"

// PostgresFightCardRepository implements FightCardRepository for PostgreSQL
type PostgresFightCardRepository struct {
	db *database.DB
}

// NewPostgresFightCardRepository creates a new fight card repository
func NewPostgresFightCardRepository(db *database.DB) *PostgresFightCardRepository {
	return &PostgresFightCardRepository{db: db}
}

// Create inserts a new entry
func (r *PostgresFightCardRepository) Create(ctx context.Context, entry *models.FightCardEntry) error {
	snap, err := encodeCardEntry(entry)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO fight_card_entries
			(id, fighter1_name, fighter2_name, num_rounds, confidence, prediction, simulation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.GetPool().Exec(ctx, query,
		entry.ID, entry.Fighter1Name, entry.Fighter2Name, entry.NumRounds,
		entry.Confidence(), snap.prediction, snap.simulation, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create fight card entry: %w", err)
	}
	return nil
}

func scanPostgresCardEntry(row pgx.Row) (*models.FightCardEntry, error) {
	var (
		entry                  models.FightCardEntry
		prediction, simulation []byte
	)
	if err := row.Scan(&entry.ID, &entry.Fighter1Name, &entry.Fighter2Name, &entry.NumRounds,
		&prediction, &simulation, &entry.CreatedAt); err != nil {
		return nil, err
	}
	if err := decodeCardEntry(&entry, prediction, simulation); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByID retrieves an entry by ID
func (r *PostgresFightCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FightCardEntry, error) {
	query := `
		SELECT id, fighter1_name, fighter2_name, num_rounds, prediction, simulation, created_at
		FROM fight_card_entries WHERE id = $1
	`
	entry, err := scanPostgresCardEntry(r.db.GetPool().QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fight card entry: %w", err)
	}
	return entry, nil
}

// List returns all entries, oldest first
func (r *PostgresFightCardRepository) List(ctx context.Context) ([]*models.FightCardEntry, error) {
	query := `
		SELECT id, fighter1_name, fighter2_name, num_rounds, prediction, simulation, created_at
		FROM fight_card_entries
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fight card: %w", err)
	}
	defer rows.Close()

	entries := []*models.FightCardEntry{}
	for rows.Next() {
		entry, err := scanPostgresCardEntry(rows)
		if err != nil {
			return nil, fmt.Errorf(errScanCardEntry, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Delete removes an entry
func (r *PostgresFightCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.GetPool().Exec(ctx, `DELETE FROM fight_card_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fight card entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
