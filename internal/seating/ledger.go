package seating

import "github.com/alexanderramin/examseat/internal/domain"

type ledgerKey struct {
	date    string
	session domain.SessionLabel
	room    string
}

func keyFor(room string, slot domain.Slot) ledgerKey {
	return ledgerKey{date: slot.DateKey(), session: slot.Session, room: room}
}

// Ledger tracks the seats consumed per (date, session, room) during one run.
// It is not safe for concurrent use.
type Ledger struct {
	used map[ledgerKey]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{used: make(map[ledgerKey]int)}
}

// Available returns the seats left in a room for a slot given its effective
// capacity, never below zero.
func (l *Ledger) Available(room string, slot domain.Slot, effectiveCapacity int) int {
	avail := effectiveCapacity - l.used[keyFor(room, slot)]
	if avail < 0 {
		return 0
	}
	return avail
}

// Consume records n more seats used in a room for a slot.
func (l *Ledger) Consume(room string, slot domain.Slot, n int) {
	l.used[keyFor(room, slot)] += n
}

// Used returns the seats consumed in a room for a slot.
func (l *Ledger) Used(room string, slot domain.Slot) int {
	return l.used[keyFor(room, slot)]
}
