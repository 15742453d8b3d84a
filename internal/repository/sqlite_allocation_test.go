package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRun(t *testing.T, repo *SQLiteRunRepo) *domain.Run {
	t.Helper()
	run := testutil.NewTestRun("in")
	require.NoError(t, repo.Create(context.Background(), run))
	return run
}

func TestAllocationRepo_RoundTripKeepsOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAllocationRepo(database)
	run := seedRun(t, NewSQLiteRunRepo(database))
	ctx := context.Background()

	evening := testutil.NewTestAllocation("PH103", "LT1", "22PH01")
	evening.Session = domain.SessionEvening
	in := []domain.Allocation{
		testutil.NewTestAllocation("CS101", "6101", "22CS01", "22CS02", "22CS03"),
		testutil.NewTestAllocation("CS101", "B-12", "22CS04"),
		evening,
	}
	require.NoError(t, repo.CreateBatch(ctx, run.ID, in))

	out, err := repo.ListByRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAllocationRepo_UnknownRunIsRejected(t *testing.T) {
	repo := NewSQLiteAllocationRepo(testutil.NewTestDB(t))

	err := repo.CreateBatch(context.Background(), "missing", []domain.Allocation{
		testutil.NewTestAllocation("CS101", "6101", "22CS01"),
	})
	assert.Error(t, err)
}

func TestAllocationRepo_EmptyRun(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAllocationRepo(database)
	run := seedRun(t, NewSQLiteRunRepo(database))

	require.NoError(t, repo.CreateBatch(context.Background(), run.ID, nil))
	out, err := repo.ListByRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Empty(t, out)
}
