package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/fight-predictor/internal/config"
	"github.com/yourusername/fight-predictor/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Driver    string
	Fighters  FighterRepository
	FightCard FightCardRepository

	ping  func(context.Context) error
	close func() error
}

// NewPostgresRepositories creates repositories backed by PostgreSQL
func NewPostgresRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &Repositories{
		Driver:    config.DriverPostgres,
		Fighters:  NewPostgresFighterRepository(db),
		FightCard: NewPostgresFightCardRepository(db),
		ping:      db.HealthCheck,
		close:     db.Close,
	}, nil
}

// NewSQLiteRepositories creates repositories backed by SQLite
func NewSQLiteRepositories(db *database.SQLite) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &Repositories{
		Driver:    config.DriverSQLite,
		Fighters:  NewSQLiteFighterRepository(db),
		FightCard: NewSQLiteFightCardRepository(db),
		ping:      db.Ping,
		close:     db.Close,
	}, nil
}

// NewMemoryRepositories creates process-local repositories
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Driver:    config.DriverMemory,
		Fighters:  NewMemoryFighterRepository(),
		FightCard: NewMemoryFightCardRepository(),
	}
}

// Open connects to the configured store, creates its schema and returns its repositories
func Open(ctx context.Context, cfg config.StorageConfig) (*Repositories, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return NewMemoryRepositories(), nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return NewSQLiteRepositories(db)

	case config.DriverPostgres:
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return NewPostgresRepositories(db)

	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// Ping checks the underlying store. Memory stores are always reachable.
func (r *Repositories) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

// Close releases the underlying store
func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}
