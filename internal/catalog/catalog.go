package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/examseat/internal/domain"
)

// NormalizeID trims surrounding whitespace from a room id.
func NormalizeID(roomID string) string {
	return strings.TrimSpace(roomID)
}

// EffectiveCapacity returns the seats usable for allocation: the raw capacity
// minus the buffer, floored at zero, then halved in sparse mode.
func EffectiveCapacity(raw, buffer int, mode domain.Mode) int {
	effective := raw - buffer
	if effective < 0 {
		effective = 0
	}
	if mode == domain.ModeSparse {
		effective /= 2
	}
	return effective
}

// SortKey returns the first run of decimal digits in a room id, or 0.
// It is an adjacency hint only; distinct rooms may share a key.
func SortKey(roomID string) int {
	id := NormalizeID(roomID)
	start := -1
	for i := 0; i < len(id); i++ {
		isDigit := id[i] >= '0' && id[i] <= '9'
		if isDigit && start < 0 {
			start = i
		}
		if !isDigit && start >= 0 {
			return atoiOrZero(id[start:i])
		}
	}
	if start >= 0 {
		return atoiOrZero(id[start:])
	}
	return 0
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Catalog holds the rooms of a run in capacity-table order with their
// derived fields computed for one buffer and mode.
type Catalog struct {
	rooms  []domain.Room
	byID   map[string]int
	buffer int
	mode   domain.Mode
}

// New builds a Catalog. Room ids are trimmed; empty or duplicate ids and
// negative capacities are rejected.
func New(inputs []domain.RoomInput, buffer int, mode domain.Mode) (*Catalog, error) {
	c := &Catalog{
		rooms:  make([]domain.Room, 0, len(inputs)),
		byID:   make(map[string]int, len(inputs)),
		buffer: buffer,
		mode:   mode,
	}
	for i, in := range inputs {
		id := NormalizeID(in.ID)
		if id == "" {
			return nil, fmt.Errorf("room %d: id is required", i+1)
		}
		if in.Capacity < 0 {
			return nil, fmt.Errorf("room %s: capacity must be non-negative, got %d", id, in.Capacity)
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("room %s: duplicate id", id)
		}
		c.byID[id] = len(c.rooms)
		c.rooms = append(c.rooms, domain.Room{
			ID:                id,
			Capacity:          in.Capacity,
			EffectiveCapacity: EffectiveCapacity(in.Capacity, buffer, mode),
			Block:             ClassifyBlock(id),
			SortNumber:        SortKey(id),
			Index:             len(c.rooms),
		})
	}
	return c, nil
}

// Rooms returns a copy of the rooms in catalog order.
func (c *Catalog) Rooms() []domain.Room {
	out := make([]domain.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// Get looks up a room by id.
func (c *Catalog) Get(roomID string) (domain.Room, bool) {
	i, ok := c.byID[NormalizeID(roomID)]
	if !ok {
		return domain.Room{}, false
	}
	return c.rooms[i], true
}

// Len returns the number of rooms.
func (c *Catalog) Len() int {
	return len(c.rooms)
}

// TotalEffectiveCapacity sums the effective capacity of all rooms, i.e. the
// most students a single slot can seat.
func (c *Catalog) TotalEffectiveCapacity() int {
	total := 0
	for _, r := range c.rooms {
		total += r.EffectiveCapacity
	}
	return total
}

// Buffer returns the seats held back in every room of the catalog.
func (c *Catalog) Buffer() int {
	return c.buffer
}

// Mode returns the seating mode the effective capacities were computed for.
func (c *Catalog) Mode() domain.Mode {
	return c.mode
}
