// Package report turns a finished run into room summaries and the CSV files
// handed to the exam office.
package report

import (
	"sort"

	"github.com/alexanderramin/examseat/internal/domain"
)

// RoomSummary is the whole-run usage of one room. Vacant is measured against
// raw capacity and goes negative when a room is reused across slots.
type RoomSummary struct {
	Room      string
	Capacity  int
	Block     domain.Block
	Allocated int
	Vacant    int
}

// RoomSummaries returns one summary per room in catalog order.
func RoomSummaries(rooms []domain.Room, allocs []domain.Allocation) []RoomSummary {
	used := make(map[string]int, len(rooms))
	for _, a := range allocs {
		used[a.Room] += len(a.Students)
	}
	out := make([]RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomSummary{
			Room:      r.ID,
			Capacity:  r.Capacity,
			Block:     r.Block,
			Allocated: used[r.ID],
			Vacant:    r.Capacity - used[r.ID],
		})
	}
	return out
}

// SlotRoomSummary is the usage of one room within one slot.
type SlotRoomSummary struct {
	Slot              domain.Slot
	Room              string
	Block             domain.Block
	Capacity          int
	EffectiveCapacity int
	Allocated         int
	Vacant            int
}

// SlotRoomSummaries returns, for every slot that has allocations, one entry
// per room in catalog order. Slots are ordered by date then session.
// Vacant is measured against effective capacity.
func SlotRoomSummaries(rooms []domain.Room, allocs []domain.Allocation) []SlotRoomSummary {
	type key struct {
		slot string
		room string
	}
	used := make(map[key]int)
	slots := make(map[string]domain.Slot)
	for _, a := range allocs {
		s := a.Slot()
		slots[s.Key()] = s
		used[key{s.Key(), a.Room}] += len(a.Students)
	}

	ordered := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return sessionRank(ordered[i].Session) < sessionRank(ordered[j].Session)
	})

	out := make([]SlotRoomSummary, 0, len(ordered)*len(rooms))
	for _, s := range ordered {
		for _, r := range rooms {
			n := used[key{s.Key(), r.ID}]
			out = append(out, SlotRoomSummary{
				Slot:              s,
				Room:              r.ID,
				Block:             r.Block,
				Capacity:          r.Capacity,
				EffectiveCapacity: r.EffectiveCapacity,
				Allocated:         n,
				Vacant:            r.EffectiveCapacity - n,
			})
		}
	}
	return out
}

func sessionRank(s domain.SessionLabel) int {
	for i, label := range domain.Sessions {
		if label == s {
			return i
		}
	}
	return len(domain.Sessions)
}
