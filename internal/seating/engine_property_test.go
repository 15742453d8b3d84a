package seating

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomDataset builds a timetable whose co-scheduled courses never share
// students, so every roll belongs to exactly one course per slot.
func randomDataset(rng *rand.Rand) (*domain.Dataset, domain.RunConfig) {
	ds := &domain.Dataset{Names: map[string]string{}}

	numRooms := rng.Intn(8) + 1
	for i := 0; i < numRooms; i++ {
		prefix := []string{"", "B-", "LT", "R", "X"}[rng.Intn(5)]
		ds.Rooms = append(ds.Rooms, domain.RoomInput{
			ID:       fmt.Sprintf("%s%d", prefix, 100+i),
			Capacity: rng.Intn(60),
		})
	}

	course := 0
	numDays := rng.Intn(3) + 1
	for d := 0; d < numDays; d++ {
		row := domain.TimetableRow{Date: testDate.AddDate(0, 0, d), Day: "Day"}
		for _, session := range domain.Sessions {
			var list []string
			for n := rng.Intn(4); n > 0; n-- {
				id := fmt.Sprintf("C%03d", course)
				course++
				list = append(list, id)
				ds.Enrollments = append(ds.Enrollments, enrollments(id, rolls(id+"-", rng.Intn(70)))...)
			}
			if session == domain.SessionMorning {
				row.Morning = list
			} else {
				row.Evening = list
			}
		}
		ds.Timetable = append(ds.Timetable, row)
	}

	cfg := domain.RunConfig{Buffer: rng.Intn(6), Mode: domain.ModeDense}
	if rng.Intn(2) == 1 {
		cfg.Mode = domain.ModeSparse
	}
	return ds, cfg
}

func TestRun_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		ds, cfg := randomDataset(rng)

		res, err := NewEngine().Run(ds, cfg)
		require.NoError(t, err, "trial %d", trial)

		effCap := map[string]int{}
		for _, r := range res.Rooms {
			effCap[r.ID] = r.EffectiveCapacity
		}

		// Invariant 1: per (slot, room) seats never exceed effective capacity
		type slotRoom struct{ slot, room string }
		used := map[slotRoom]int{}
		for _, a := range res.Allocations {
			used[slotRoom{a.Slot().Key(), a.Room}] += len(a.Students)
			assert.NotEmpty(t, a.Students, "trial %d: allocation records are never empty", trial)
		}
		for key, n := range used {
			assert.LessOrEqual(t, n, effCap[key.room], "trial %d: %v over capacity", trial, key)
		}

		// Invariant 2: a roll is seated at most once per slot
		seen := map[string]string{}
		for _, a := range res.Allocations {
			for _, roll := range a.Students {
				k := a.Slot().Key() + "|" + roll
				prev, dup := seen[k]
				assert.False(t, dup, "trial %d: %s seated in %s and %s", trial, k, prev, a.Room)
				seen[k] = a.Room
			}
		}

		// Invariant 3: each course is fully seated or a shortfall names the gap
		for _, o := range res.Outcomes {
			seated := 0
			for _, a := range o.Allocations {
				seated += len(a.Students)
			}
			assert.Equal(t, res.Roster.Size(o.Course), seated+o.Shortfall, "trial %d: %s", trial, o.Course)

			var reported []int
			for _, d := range res.Errors() {
				if d.Courses[0] == o.Course && d.Session == o.Slot.Session && d.Date.Equal(o.Slot.Date) {
					reported = append(reported, d.Count)
				}
			}
			if o.Shortfall == 0 {
				assert.Empty(t, reported, "trial %d: %s", trial, o.Course)
			} else {
				assert.Equal(t, []int{o.Shortfall}, reported, "trial %d: %s", trial, o.Course)
			}
		}

		assert.Zero(t, res.ClashCount(), "trial %d: generated rosters are disjoint", trial)
	}
}

// TestRun_Deterministic verifies identical input yields identical output.
func TestRun_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		ds, cfg := randomDataset(rng)
		first, err := NewEngine().Run(ds, cfg)
		require.NoError(t, err)
		second, err := NewEngine().Run(ds, cfg)
		require.NoError(t, err)
		assert.Equal(t, first.Allocations, second.Allocations, "trial %d", trial)
		assert.Equal(t, first.Diagnostics, second.Diagnostics, "trial %d", trial)
	}
}
