package seating

import (
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/examseat/internal/catalog"
	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/roster"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func room(id string, capacity int) domain.RoomInput {
	return domain.RoomInput{ID: id, Capacity: capacity}
}

func newCatalog(t *testing.T, mode domain.Mode, buffer int, rooms ...domain.RoomInput) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(rooms, buffer, mode)
	require.NoError(t, err)
	return c
}

// rolls returns n rolls named prefix1..prefixN.
func rolls(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}

func enrollments(course string, students []string) []domain.Enrollment {
	out := make([]domain.Enrollment, len(students))
	for i, s := range students {
		out[i] = domain.Enrollment{Course: course, Roll: s}
	}
	return out
}

func newRoster(courses map[string][]string) *roster.Index {
	var rows []domain.Enrollment
	for c, s := range courses {
		rows = append(rows, enrollments(c, s)...)
	}
	return roster.New(rows, nil)
}

func roomsOf(allocs []domain.Allocation) []string {
	out := make([]string, len(allocs))
	for i, a := range allocs {
		out[i] = a.Room
	}
	return out
}

func seatedIn(allocs []domain.Allocation) []int {
	out := make([]int, len(allocs))
	for i, a := range allocs {
		out[i] = len(a.Students)
	}
	return out
}
