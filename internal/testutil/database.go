// Package testutil provides shared test fixtures.
package testutil

import (
	"database/sql"
	"testing"

	"pantry-planner/internal/database"
)

// NewTestDatabase opens a migrated in-memory database that is closed when
// the test finishes.
func NewTestDatabase(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db.SQL
}
