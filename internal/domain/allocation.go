package domain

import "time"

// Allocation records the students of one course seated in one room for one slot.
// Records are appended by the allocator and never modified afterwards.
type Allocation struct {
	Date     time.Time
	Day      string
	Session  SessionLabel
	Course   string
	Room     string
	Students []string
}

// Slot returns the slot the allocation belongs to.
func (a Allocation) Slot() Slot {
	return NewSlot(a.Date, a.Session)
}

// Diagnostic is a recoverable problem found during a run: a clash between
// co-scheduled courses or a course that could not be fully seated.
type Diagnostic struct {
	Severity Severity
	Kind     DiagnosticKind
	Date     time.Time
	Session  SessionLabel
	Courses  []string
	// Students holds the shared rolls of a clash.
	Students []string
	// Count is the number of unplaced students of a shortfall.
	Count   int
	Message string
}
