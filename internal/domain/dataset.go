package domain

import "time"

// UnknownName is the display name used for rolls missing from the name mapping.
const UnknownName = "Unknown Name"

// NoExam marks a timetable cell without a session.
const NoExam = "NO EXAM"

// TimetableRow is one day of the exam timetable.
type TimetableRow struct {
	Date    time.Time
	Day     string
	Morning []string
	Evening []string
}

// Courses returns the course list scheduled in the given session.
func (r TimetableRow) Courses(session SessionLabel) []string {
	if session == SessionEvening {
		return r.Evening
	}
	return r.Morning
}

// Enrollment is one (course, roll) row of the course roster.
type Enrollment struct {
	Course string
	Roll   string
}

// RoomInput is a room as read from the capacity table.
type RoomInput struct {
	ID       string
	Capacity int
}

// Room is a catalog room with its derived fields.
type Room struct {
	ID                string
	Capacity          int
	EffectiveCapacity int
	Block             Block
	SortNumber        int
	// Index is the position of the room in the capacity table.
	Index int
}

// Student is a roll with its display name.
type Student struct {
	Roll string
	Name string
}

// Dataset is the normalized input of one allocation run.
type Dataset struct {
	Timetable   []TimetableRow
	Enrollments []Enrollment
	Names       map[string]string
	Rooms       []RoomInput
}

// RunConfig holds the capacity adjustments applied to every room.
type RunConfig struct {
	Buffer int  `validate:"gte=0"`
	Mode   Mode `validate:"oneof=dense sparse"`
}
