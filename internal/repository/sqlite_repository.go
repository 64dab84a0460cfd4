package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/fight-predictor/internal/database"
	"github.com/yourusername/fight-predictor/internal/models"
)

// sqliteTimeLayout is fixed width so that text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatSQLiteTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

// SQLiteFighterRepository implements FighterRepository for SQLite
type SQLiteFighterRepository struct {
	db *database.SQLite
}

// NewSQLiteFighterRepository creates a new fighter repository
func NewSQLiteFighterRepository(db *database.SQLite) *SQLiteFighterRepository {
	return &SQLiteFighterRepository{db: db}
}

// ReplaceAll swaps the stored roster in one transaction
func (r *SQLiteFighterRepository) ReplaceAll(ctx context.Context, fighters []models.Fighter) (int, error) {
	unique := dedupeFighters(fighters)

	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fighters`); err != nil {
		return 0, fmt.Errorf("failed to clear fighters: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO fighters (name, data, updated_at) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare fighter insert: %w", err)
	}
	defer stmt.Close()

	now := formatSQLiteTime(time.Now())
	for _, f := range unique {
		data, err := json.Marshal(f)
		if err != nil {
			return 0, fmt.Errorf("failed to encode fighter %q: %w", f.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, fighterKey(f.Name), string(data), now); err != nil {
			return 0, fmt.Errorf("failed to insert fighter %q: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit roster: %w", err)
	}
	return len(unique), nil
}

// GetByName retrieves a fighter by name
func (r *SQLiteFighterRepository) GetByName(ctx context.Context, name string) (*models.Fighter, error) {
	var data string
	err := r.db.DB().QueryRowContext(ctx, `SELECT data FROM fighters WHERE name = ?`, fighterKey(name)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fighter: %w", err)
	}

	f := &models.Fighter{}
	if err := json.Unmarshal([]byte(data), f); err != nil {
		return nil, fmt.Errorf("failed to decode fighter: %w", err)
	}
	return f, nil
}

// FetchFighters returns the stored roster ordered by name
func (r *SQLiteFighterRepository) FetchFighters(ctx context.Context) ([]models.Fighter, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT data FROM fighters ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fighters: %w", err)
	}
	defer rows.Close()

	var fighters []models.Fighter
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan fighter: %w", err)
		}
		var f models.Fighter
		if err := json.Unmarshal([]byte(data), &f); err != nil {
			return nil, fmt.Errorf("failed to decode fighter: %w", err)
		}
		fighters = append(fighters, f)
	}
	return fighters, rows.Err()
}

// Count returns the number of stored fighters
func (r *SQLiteFighterRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM fighters`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count fighters: %w", err)
	}
	return n, nil
}

// SQLiteFightCardRepository implements FightCardRepository for SQLite
type SQLiteFightCardRepository struct {
	db *database.SQLite
}

// NewSQLiteFightCardRepository creates a new fight card repository
func NewSQLiteFightCardRepository(db *database.SQLite) *SQLiteFightCardRepository {
	return &SQLiteFightCardRepository{db: db}
}

// Create inserts a new entry
func (r *SQLiteFightCardRepository) Create(ctx context.Context, entry *models.FightCardEntry) error {
	snap, err := encodeCardEntry(entry)
	if err != nil {
		return err
	}

	var simulation interface{}
	if snap.simulation != nil {
		simulation = string(snap.simulation)
	}

	_, err = r.db.DB().ExecContext(ctx, `
		INSERT INTO fight_card_entries
			(id, fighter1_name, fighter2_name, num_rounds, confidence, prediction, simulation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.Fighter1Name, entry.Fighter2Name, entry.NumRounds,
		entry.Confidence(), string(snap.prediction), simulation, formatSQLiteTime(entry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create fight card entry: %w", err)
	}
	return nil
}

const sqliteCardColumns = `id, fighter1_name, fighter2_name, num_rounds, prediction, simulation, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSQLiteCardEntry(row rowScanner) (*models.FightCardEntry, error) {
	var (
		id, createdAt, prediction string
		simulation                sql.NullString
		entry                     models.FightCardEntry
	)
	if err := row.Scan(&id, &entry.Fighter1Name, &entry.Fighter2Name, &entry.NumRounds, &prediction, &simulation, &createdAt); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidID, id)
	}
	entry.ID = parsedID

	entry.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	if err := decodeCardEntry(&entry, []byte(prediction), []byte(simulation.String)); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByID retrieves an entry by ID
func (r *SQLiteFightCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FightCardEntry, error) {
	row := r.db.DB().QueryRowContext(ctx, `SELECT `+sqliteCardColumns+` FROM fight_card_entries WHERE id = ?`, id.String())
	entry, err := scanSQLiteCardEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fight card entry: %w", err)
	}
	return entry, nil
}

// List returns all entries, oldest first
func (r *SQLiteFightCardRepository) List(ctx context.Context) ([]*models.FightCardEntry, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT `+sqliteCardColumns+` FROM fight_card_entries ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fight card: %w", err)
	}
	defer rows.Close()

	entries := []*models.FightCardEntry{}
	for rows.Next() {
		entry, err := scanSQLiteCardEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fight card entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Delete removes an entry
func (r *SQLiteFightCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM fight_card_entries WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete fight card entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete fight card entry: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
