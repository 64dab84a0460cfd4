package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "predictor.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.EnsureSchema(ctx))
	// idempotent
	require.NoError(t, db.EnsureSchema(ctx))
	assert.NoError(t, db.Ping(ctx))

	var count int
	err = db.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('fighters', 'fight_card_entries')",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSetupTestSQLite(t *testing.T) {
	db := SetupTestSQLite(t)

	_, err := db.DB().Exec("INSERT INTO fighters (name, data, updated_at) VALUES ('a', '{}', 'now')")
	require.NoError(t, err)

	var n int
	require.NoError(t, db.DB().QueryRow("SELECT COUNT(*) FROM fighters").Scan(&n))
	assert.Equal(t, 1, n)
}
