package seating

import (
	"sort"

	"github.com/alexanderramin/examseat/internal/domain"
)

// candidate is a room with seats left in the current slot.
type candidate struct {
	Room      domain.Room
	Available int
}

// rankRooms sorts candidates by the canonical room preference:
// 1. Block match with preferred (when set): matching rooms first
// 2. Effective capacity: larger first
// 3. Sort key: lower first (presumed adjacent rooms)
// 4. Catalog index: input order
func rankRooms(candidates []candidate, preferred domain.Block) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].Room, candidates[j].Room

		if preferred != "" {
			matchA, matchB := a.Block == preferred, b.Block == preferred
			if matchA != matchB {
				return matchA
			}
		}

		if a.EffectiveCapacity != b.EffectiveCapacity {
			return a.EffectiveCapacity > b.EffectiveCapacity
		}

		if a.SortNumber != b.SortNumber {
			return a.SortNumber < b.SortNumber
		}

		return a.Index < b.Index
	})
}

// courseSize pairs a course with its roster size.
type courseSize struct {
	Course string
	Size   int
}

// orderCourses sorts courses by roster size, largest first. Equal sizes keep
// their timetable order.
func orderCourses(courses []courseSize) {
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Size > courses[j].Size
	})
}
