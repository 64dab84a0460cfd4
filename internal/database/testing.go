package database

import (
	"context"
	"testing"
	"time"
)

// SetupTestSQLite opens an in-memory SQLite database with the schema applied and closes
// it when the test ends.
func SetupTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		t.Fatalf("failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})
	return db
}
