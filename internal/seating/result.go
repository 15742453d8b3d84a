package seating

import (
	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/roster"
)

// Result is everything one run produced.
type Result struct {
	Config      domain.RunConfig
	Rooms       []domain.Room
	Allocations []domain.Allocation
	Diagnostics []domain.Diagnostic
	Outcomes    []Outcome
	Roster      *roster.Index
}

// Errors returns the error-severity diagnostics in run order.
func (r *Result) Errors() []domain.Diagnostic {
	return r.filter(domain.SeverityError)
}

// Warnings returns the warning-severity diagnostics in run order.
func (r *Result) Warnings() []domain.Diagnostic {
	return r.filter(domain.SeverityWarning)
}

func (r *Result) filter(sev domain.Severity) []domain.Diagnostic {
	var out []domain.Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// SeatedCount returns the number of student seats assigned across all slots.
func (r *Result) SeatedCount() int {
	total := 0
	for _, a := range r.Allocations {
		total += len(a.Students)
	}
	return total
}

// ShortfallCount returns the number of unseated students across all slots.
func (r *Result) ShortfallCount() int {
	total := 0
	for _, d := range r.Diagnostics {
		if d.Kind == domain.KindShortfall {
			total += d.Count
		}
	}
	return total
}

// ClashCount returns the number of clashing course pairs reported.
func (r *Result) ClashCount() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == domain.KindClash {
			n++
		}
	}
	return n
}

// Complete reports whether every scheduled student was seated.
func (r *Result) Complete() bool {
	return r.ShortfallCount() == 0
}
