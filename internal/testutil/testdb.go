package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/examseat/internal/db"
)

// NewTestDB opens a private in-memory run history with the runs, allocations
// and diagnostics tables migrated. It is closed by t.Cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening run history: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW returns the unit of work the seating service saves runs through.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
