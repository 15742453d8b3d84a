package domain

import "time"

// DateLayout is the canonical date format used for slot keys and storage.
const DateLayout = "2006-01-02"

// Slot identifies one exam period: a calendar date and a session label.
type Slot struct {
	Date    time.Time
	Session SessionLabel
}

// NewSlot truncates date to midnight UTC so slots compare by calendar day.
func NewSlot(date time.Time, session SessionLabel) Slot {
	y, m, d := date.Date()
	return Slot{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Session: session}
}

// DateKey returns the slot date as YYYY-MM-DD.
func (s Slot) DateKey() string {
	return s.Date.Format(DateLayout)
}

// Key returns "YYYY-MM-DD/Session".
func (s Slot) Key() string {
	return s.DateKey() + "/" + string(s.Session)
}

func (s Slot) String() string {
	return s.DateKey() + " (" + string(s.Session) + ")"
}
