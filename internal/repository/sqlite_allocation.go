package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/examseat/internal/db"
	"github.com/alexanderramin/examseat/internal/domain"
)

// SQLiteAllocationRepo implements AllocationRepo using a SQLite database.
type SQLiteAllocationRepo struct {
	db db.DBTX
}

// NewSQLiteAllocationRepo creates a new SQLiteAllocationRepo.
func NewSQLiteAllocationRepo(conn db.DBTX) *SQLiteAllocationRepo {
	return &SQLiteAllocationRepo{db: conn}
}

func (r *SQLiteAllocationRepo) CreateBatch(ctx context.Context, runID string, allocs []domain.Allocation) error {
	query := `INSERT INTO allocations (run_id, seq, exam_date, day, session, course_code, room_id, student_count, rolls)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, a := range allocs {
		_, err := r.db.ExecContext(ctx, query,
			runID,
			i,
			a.Date.Format(dateLayout),
			a.Day,
			string(a.Session),
			a.Course,
			a.Room,
			len(a.Students),
			joinList(a.Students),
		)
		if err != nil {
			return fmt.Errorf("inserting allocation %d (%s in %s): %w", i, a.Course, a.Room, err)
		}
	}
	return nil
}

func (r *SQLiteAllocationRepo) ListByRun(ctx context.Context, runID string) ([]domain.Allocation, error) {
	query := `SELECT exam_date, day, session, course_code, room_id, rolls
		FROM allocations WHERE run_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing allocations: %w", err)
	}
	defer rows.Close()

	var allocs []domain.Allocation
	for rows.Next() {
		var a domain.Allocation
		var date, session, rolls string
		if err := rows.Scan(&date, &a.Day, &session, &a.Course, &a.Room, &rolls); err != nil {
			return nil, fmt.Errorf("scanning allocation row: %w", err)
		}
		if a.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("parsing exam_date: %w", err)
		}
		a.Session = domain.SessionLabel(session)
		a.Students = splitList(rolls)
		allocs = append(allocs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating allocations: %w", err)
	}
	return allocs, nil
}
