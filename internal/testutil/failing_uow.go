package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/examseat/internal/db"
)

// FailingInsertUoW runs the callback in a real transaction but fails the
// first INSERT into Table with Err, so a run save can be broken after the
// runs row is already written.
type FailingInsertUoW struct {
	DB    *sql.DB
	Table string
	Err   error
}

func (u *FailingInsertUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	guarded := &failingInsert{DBTX: tx, prefix: "INSERT INTO " + u.Table + " ", err: u.Err}
	if err := fn(ctx, guarded); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingInsert struct {
	db.DBTX
	prefix string
	err    error
}

func (f *failingInsert) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.HasPrefix(strings.TrimSpace(query), f.prefix) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
