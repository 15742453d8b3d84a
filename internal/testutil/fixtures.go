package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/google/uuid"
)

// Run options
type RunOption func(*domain.Run)

func WithRunCounts(allocations, seated, shortfall, clashes int) RunOption {
	return func(r *domain.Run) {
		r.AllocationCount = allocations
		r.SeatedCount = seated
		r.ShortfallCount = shortfall
		r.ClashCount = clashes
	}
}

func WithCreatedAt(t time.Time) RunOption {
	return func(r *domain.Run) {
		r.CreatedAt = t
	}
}

func WithMode(m domain.Mode, buffer int) RunOption {
	return func(r *domain.Run) {
		r.Mode = m
		r.Buffer = buffer
	}
}

func NewTestRun(inputDir string, opts ...RunOption) *domain.Run {
	r := &domain.Run{
		ID:        uuid.New().String(),
		InputDir:  inputDir,
		OutputDir: "output",
		Mode:      domain.ModeDense,
		CreatedAt: time.Now().UTC(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// ExamDate is the first exam day used across fixtures, a Monday.
var ExamDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

func NewTestAllocation(course, room string, students ...string) domain.Allocation {
	return domain.Allocation{
		Date:     ExamDate,
		Day:      "Monday",
		Session:  domain.SessionMorning,
		Course:   course,
		Room:     room,
		Students: students,
	}
}

// InputFiles is the content of an input directory keyed by file name.
type InputFiles map[string]string

// SampleInput returns a small, complete input set: two exam days, one clash
// (CS101 and MA102 share 22CS02) and enough capacity for everyone.
func SampleInput() InputFiles {
	return InputFiles{
		"in_timetable.csv": lines(
			"Date,Day,Morning,Evening",
			"2025-11-03,Monday,CS101;MA102,PH103",
			"2025-11-04,Tuesday,NO EXAM,CS101",
		),
		"in_course_roll_mapping.csv": lines(
			"rollno,course_code",
			"22CS01,CS101",
			"22CS02,CS101",
			"22CS03,CS101",
			"22CS02,MA102",
			"22MA01,MA102",
			"22PH01,PH103",
		),
		"in_roll_name_mapping.csv": lines(
			"Roll,Name",
			"22CS01,Asha Rao",
			"22CS02,Vikram Sen",
			"22MA01,Meera Iyer",
		),
		"in_room_capacity.csv": lines(
			"Room No.,Exam Capacity",
			"6101,4",
			"B-12,3",
			"LT1,2",
		),
	}
}

// With returns a copy of f with name replaced by the given lines.
func (f InputFiles) With(name string, content ...string) InputFiles {
	out := make(InputFiles, len(f))
	for k, v := range f {
		out[k] = v
	}
	out[name] = lines(content...)
	return out
}

// WriteInputDir writes files into a fresh temporary directory and returns it.
func WriteInputDir(t *testing.T, files InputFiles) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}
