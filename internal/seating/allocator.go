package seating

import (
	"fmt"

	"github.com/alexanderramin/examseat/internal/catalog"
	"github.com/alexanderramin/examseat/internal/domain"
	"go.uber.org/zap"
)

// Outcome is the result of seating one course in one slot.
type Outcome struct {
	Course      string
	Slot        domain.Slot
	Success     bool
	Requested   int
	Allocated   int
	Shortfall   int
	RoomsUsed   []string
	Allocations []domain.Allocation
}

// Allocator seats the students of one course at a time into catalog rooms,
// consuming capacity from a run-scoped ledger.
type Allocator struct {
	rooms  *catalog.Catalog
	ledger *Ledger
	logger *zap.Logger
}

// NewAllocator creates an Allocator over the given catalog and ledger.
// A nil logger discards output.
func NewAllocator(rooms *catalog.Catalog, ledger *Ledger, logger *zap.Logger) *Allocator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Allocator{rooms: rooms, ledger: ledger, logger: logger}
}

// Allocate seats students, in order, into the largest available rooms,
// keeping the course in the block of the first room chosen while that block
// still has seats. Students that do not fit are reported as a shortfall.
func (a *Allocator) Allocate(course string, students []string, slot domain.Slot, day string) Outcome {
	out := Outcome{Course: course, Slot: slot, Requested: len(students)}

	if len(students) == 0 {
		a.logger.Warn("no students found for course",
			zap.String("course", course), zap.String("slot", slot.Key()))
		out.Success = true
		return out
	}

	remaining := make([]string, len(students))
	copy(remaining, students)
	var courseBlock domain.Block

	for len(remaining) > 0 {
		candidates := a.availableRooms(slot, courseBlock)
		if len(candidates) == 0 && courseBlock != "" {
			candidates = a.availableRooms(slot, "")
			courseBlock = ""
		}
		if len(candidates) == 0 {
			break
		}

		pick := candidates[0]
		if courseBlock == "" {
			courseBlock = pick.Room.Block
		}
		pick = preferBlock(candidates, pick, courseBlock)

		n := min(pick.Available, len(remaining))
		seated := make([]string, n)
		copy(seated, remaining[:n])
		remaining = remaining[n:]

		a.ledger.Consume(pick.Room.ID, slot, n)
		out.Allocations = append(out.Allocations, domain.Allocation{
			Date:     slot.Date,
			Day:      day,
			Session:  slot.Session,
			Course:   course,
			Room:     pick.Room.ID,
			Students: seated,
		})
		out.RoomsUsed = append(out.RoomsUsed, pick.Room.ID)
		out.Allocated += n

		a.logger.Debug("allocated students to room",
			zap.String("course", course),
			zap.String("room", pick.Room.ID),
			zap.String("block", string(pick.Room.Block)),
			zap.Int("count", n),
			zap.String("slot", slot.Key()),
		)
	}

	out.Shortfall = len(remaining)
	out.Success = out.Shortfall == 0
	return out
}

// availableRooms returns the catalog rooms with seats left in the slot,
// ranked for the preferred block.
func (a *Allocator) availableRooms(slot domain.Slot, preferred domain.Block) []candidate {
	var candidates []candidate
	for _, room := range a.rooms.Rooms() {
		avail := a.ledger.Available(room.ID, slot, room.EffectiveCapacity)
		if avail > 0 {
			candidates = append(candidates, candidate{Room: room, Available: avail})
		}
	}
	rankRooms(candidates, preferred)
	return candidates
}

// preferBlock refuses an off-block pick while the current candidate set
// still has a room in the course block. Ranking already puts such rooms
// first, so this only matters if the ranking changes.
func preferBlock(candidates []candidate, pick candidate, courseBlock domain.Block) candidate {
	if pick.Room.Block == courseBlock {
		return pick
	}
	for _, c := range candidates {
		if c.Room.Block == courseBlock {
			return c
		}
	}
	return pick
}

// ShortfallDiagnostic describes the students of an outcome left unseated.
func ShortfallDiagnostic(o Outcome) domain.Diagnostic {
	return domain.Diagnostic{
		Severity: domain.SeverityError,
		Kind:     domain.KindShortfall,
		Date:     o.Slot.Date,
		Session:  o.Slot.Session,
		Courses:  []string{o.Course},
		Count:    o.Shortfall,
		Message: fmt.Sprintf("Cannot allocate all students for %s on %s (%s). %d students remaining. Total capacity insufficient.",
			o.Course, o.Slot.DateKey(), o.Slot.Session, o.Shortfall),
	}
}
