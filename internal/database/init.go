package database

import (
	"context"
	"fmt"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS fighters (
	name       TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS fight_card_entries (
	id            UUID PRIMARY KEY,
	fighter1_name TEXT NOT NULL,
	fighter2_name TEXT NOT NULL,
	num_rounds    INTEGER NOT NULL,
	confidence    DOUBLE PRECISION NOT NULL,
	prediction    JSONB NOT NULL,
	simulation    JSONB,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fight_card_entries_created_at ON fight_card_entries (created_at);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS fighters (
	name       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS fight_card_entries (
	id            TEXT PRIMARY KEY,
	fighter1_name TEXT NOT NULL,
	fighter2_name TEXT NOT NULL,
	num_rounds    INTEGER NOT NULL,
	confidence    REAL NOT NULL,
	prediction    TEXT NOT NULL,
	simulation    TEXT,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fight_card_entries_created_at ON fight_card_entries (created_at);
`

// EnsureSchema creates the tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create postgres schema: %w", err)
	}
	return nil
}

// EnsureSchema creates the tables if they do not exist.
func (s *SQLite) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to create sqlite schema: %w", err)
	}
	return nil
}
