package domain

import (
	"fmt"
	"strings"
)

// Block is the coarse building grouping a room belongs to.
type Block string

const (
	BlockB1 Block = "B1"
	BlockB2 Block = "B2"
)

// Mode controls seating density.
type Mode string

const (
	ModeDense  Mode = "dense"
	ModeSparse Mode = "sparse"
)

// ParseMode accepts "dense" or "sparse" in any case, ignoring surrounding space.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDense:
		return ModeDense, nil
	case ModeSparse:
		return ModeSparse, nil
	default:
		return "", fmt.Errorf("mode must be %q or %q, got %q", ModeDense, ModeSparse, s)
	}
}

// SessionLabel names an exam period within a day.
type SessionLabel string

const (
	SessionMorning SessionLabel = "Morning"
	SessionEvening SessionLabel = "Evening"
)

// Sessions lists the session labels in processing order.
var Sessions = []SessionLabel{SessionMorning, SessionEvening}

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type DiagnosticKind string

const (
	KindClash     DiagnosticKind = "clash"
	KindShortfall DiagnosticKind = "shortfall"
)
