package domain

import "time"

// Run is the persisted summary of one allocation run.
type Run struct {
	ID              string
	InputDir        string
	OutputDir       string
	Buffer          int
	Mode            Mode
	AllocationCount int
	SeatedCount     int
	ShortfallCount  int
	ClashCount      int
	CreatedAt       time.Time
}

// HasShortfall reports whether any student was left unseated.
func (r *Run) HasShortfall() bool {
	return r.ShortfallCount > 0
}

// DisplayID returns the first 8 characters of the run ID.
func (r *Run) DisplayID() string {
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}
