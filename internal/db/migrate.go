package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id               TEXT PRIMARY KEY,
		input_dir        TEXT NOT NULL,
		buffer           INTEGER NOT NULL DEFAULT 0 CHECK(buffer >= 0),
		mode             TEXT NOT NULL DEFAULT 'dense'
		                 CHECK(mode IN ('dense','sparse')),
		allocation_count INTEGER NOT NULL DEFAULT 0,
		seated_count     INTEGER NOT NULL DEFAULT 0,
		shortfall_count  INTEGER NOT NULL DEFAULT 0,
		clash_count      INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS allocations (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id        TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		exam_date     TEXT NOT NULL,
		day           TEXT NOT NULL DEFAULT '',
		session       TEXT NOT NULL
		              CHECK(session IN ('Morning','Evening')),
		course_code   TEXT NOT NULL,
		room_id       TEXT NOT NULL,
		student_count INTEGER NOT NULL,
		rolls         TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS diagnostics (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id      TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		severity    TEXT NOT NULL CHECK(severity IN ('warning','error')),
		kind        TEXT NOT NULL CHECK(kind IN ('clash','shortfall')),
		exam_date   TEXT NOT NULL,
		session     TEXT NOT NULL,
		courses     TEXT NOT NULL DEFAULT '',
		rolls       TEXT NOT NULL DEFAULT '',
		count       INTEGER NOT NULL DEFAULT 0,
		message     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_run ON allocations(run_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_slot ON allocations(run_id, exam_date, session)`,
	`CREATE INDEX IF NOT EXISTS idx_diagnostics_run ON diagnostics(run_id, seq)`,

	`ALTER TABLE runs ADD COLUMN output_dir TEXT NOT NULL DEFAULT ''`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
