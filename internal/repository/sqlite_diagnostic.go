package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/examseat/internal/db"
	"github.com/alexanderramin/examseat/internal/domain"
)

// SQLiteDiagnosticRepo implements DiagnosticRepo using a SQLite database.
type SQLiteDiagnosticRepo struct {
	db db.DBTX
}

// NewSQLiteDiagnosticRepo creates a new SQLiteDiagnosticRepo.
func NewSQLiteDiagnosticRepo(conn db.DBTX) *SQLiteDiagnosticRepo {
	return &SQLiteDiagnosticRepo{db: conn}
}

func (r *SQLiteDiagnosticRepo) CreateBatch(ctx context.Context, runID string, diags []domain.Diagnostic) error {
	query := `INSERT INTO diagnostics (run_id, seq, severity, kind, exam_date, session, courses, rolls, count, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, d := range diags {
		_, err := r.db.ExecContext(ctx, query,
			runID,
			i,
			string(d.Severity),
			string(d.Kind),
			d.Date.Format(dateLayout),
			string(d.Session),
			joinList(d.Courses),
			joinList(d.Students),
			d.Count,
			d.Message,
		)
		if err != nil {
			return fmt.Errorf("inserting diagnostic %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteDiagnosticRepo) ListByRun(ctx context.Context, runID string) ([]domain.Diagnostic, error) {
	query := `SELECT severity, kind, exam_date, session, courses, rolls, count, message
		FROM diagnostics WHERE run_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing diagnostics: %w", err)
	}
	defer rows.Close()

	var diags []domain.Diagnostic
	for rows.Next() {
		var d domain.Diagnostic
		var severity, kind, date, session, courses, rolls string
		if err := rows.Scan(&severity, &kind, &date, &session, &courses, &rolls, &d.Count, &d.Message); err != nil {
			return nil, fmt.Errorf("scanning diagnostic row: %w", err)
		}
		if d.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("parsing exam_date: %w", err)
		}
		d.Severity = domain.Severity(severity)
		d.Kind = domain.DiagnosticKind(kind)
		d.Session = domain.SessionLabel(session)
		d.Courses = splitList(courses)
		d.Students = splitList(rolls)
		diags = append(diags, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating diagnostics: %w", err)
	}
	return diags, nil
}
