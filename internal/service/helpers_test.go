package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/examseat/internal/db"
	"github.com/alexanderramin/examseat/internal/report"
	"github.com/alexanderramin/examseat/internal/repository"
	"github.com/alexanderramin/examseat/internal/seating"
	"github.com/alexanderramin/examseat/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

type fixture struct {
	db       *sql.DB
	seating  SeatingService
	runs     RunService
	observer *recordingObserver
}

func newFixture(t *testing.T, uow ...db.UnitOfWork) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	var u db.UnitOfWork = testutil.NewTestUoW(database)
	if len(uow) > 0 {
		u = uow[0]
	}
	obs := &recordingObserver{}
	return &fixture{
		db:       database,
		seating:  NewSeatingService(seating.NewEngine(), report.NewExporter(nil), u, nil, obs),
		runs:     NewRunService(repository.NewSQLiteRunRepo(database), repository.NewSQLiteAllocationRepo(database), repository.NewSQLiteDiagnosticRepo(database)),
		observer: obs,
	}
}
