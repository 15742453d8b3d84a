package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/seating"
	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

// Output file names written at the top of the output directory.
const (
	OverallFile   = "op_overall_seating_arrangement.csv"
	SeatsLeftFile = "op_seats_left.csv"
	ErrorsFile    = "errors.txt"
)

const (
	sheetDateLayout = "02_01_2006"
	staffRows       = 5
)

// NameLookup resolves a roll to the name printed on attendance sheets.
type NameLookup interface {
	Name(roll string) string
}

// ExportReport lists what Write produced. Failures never undo an allocation.
type ExportReport struct {
	Files    []string
	Failures []string
}

// OK reports whether every file was written.
func (r *ExportReport) OK() bool {
	return len(r.Failures) == 0
}

// Exporter writes the output files of a run.
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates an Exporter. A nil logger is replaced by a no-op one.
func NewExporter(logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{logger: logger}
}

// Write writes the overall arrangement, seats-left summary, attendance
// sheets and errors.txt into dir. Only a failure to create dir itself is
// returned as an error; every other failure is collected in the report.
func (e *Exporter) Write(dir string, res *seating.Result, names NameLookup) (*ExportReport, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	rep := &ExportReport{}

	e.writeSheets(dir, res.Allocations, names, rep)
	e.writeCSV(filepath.Join(dir, OverallFile), overallRows(res.Allocations), rep)
	e.writeCSV(filepath.Join(dir, SeatsLeftFile), seatsLeftRows(RoomSummaries(res.Rooms, res.Allocations)), rep)

	var lines []string
	for _, d := range res.Diagnostics {
		lines = append(lines, d.Message)
	}
	lines = append(lines, rep.Failures...)
	if len(lines) > 0 {
		path := filepath.Join(dir, ErrorsFile)
		if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
			rep.Failures = append(rep.Failures, fmt.Sprintf("writing %s: %v", path, err))
		} else {
			rep.Files = append(rep.Files, path)
		}
	}

	e.logger.Info("output files written",
		zap.String("dir", dir),
		zap.Int("files", len(rep.Files)),
		zap.Int("failures", len(rep.Failures)),
	)
	return rep, nil
}

func (e *Exporter) writeCSV(path string, rows any, rep *ExportReport) {
	if err := writeCSVFile(path, rows); err != nil {
		e.logger.Error("writing output file", zap.String("path", path), zap.Error(err))
		rep.Failures = append(rep.Failures, fmt.Sprintf("writing %s: %v", path, err))
		return
	}
	rep.Files = append(rep.Files, path)
}

func writeCSVFile(path string, rows any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return gocsv.MarshalFile(rows, f)
}

// sheet is the students of one course in one room for one slot, merged
// across allocation records.
type sheet struct {
	slot     domain.Slot
	course   string
	room     string
	students []string
}

func (e *Exporter) writeSheets(dir string, allocs []domain.Allocation, names NameLookup, rep *ExportReport) {
	for _, s := range groupSheets(allocs) {
		e.writeCSV(filepath.Join(dir, SheetPath(s.slot, s.course, s.room)), attendanceRows(s.students, names), rep)
	}
}

// SheetPath returns the attendance sheet path of a course and room within a
// slot, relative to the output directory.
func SheetPath(slot domain.Slot, course, room string) string {
	date := slot.Date.Format(sheetDateLayout)
	name := fmt.Sprintf("%s_%s_%s_%s.csv", date, safeName(course), safeName(room), strings.ToLower(string(slot.Session)))
	return filepath.Join(date, string(slot.Session), name)
}

// safeName keeps path separators out of file names.
func safeName(s string) string {
	return strings.NewReplacer("/", "-", `\`, "-").Replace(s)
}

func groupSheets(allocs []domain.Allocation) []*sheet {
	type key struct {
		slot   string
		course string
		room   string
	}
	index := make(map[key]*sheet)
	var out []*sheet
	for _, a := range allocs {
		s := a.Slot()
		k := key{s.Key(), a.Course, a.Room}
		sh, ok := index[k]
		if !ok {
			sh = &sheet{slot: s, course: a.Course, room: a.Room}
			index[k] = sh
			out = append(out, sh)
		}
		sh.students = append(sh.students, a.Students...)
	}
	return out
}

func attendanceRows(students []string, names NameLookup) []*AttendanceRow {
	rows := make([]*AttendanceRow, 0, len(students)+1+2*staffRows)
	for _, roll := range students {
		rows = append(rows, &AttendanceRow{Roll: roll, Name: names.Name(roll)})
	}
	rows = append(rows, &AttendanceRow{})
	for i := 1; i <= staffRows; i++ {
		rows = append(rows, &AttendanceRow{Roll: fmt.Sprintf("TA%d", i)})
	}
	for i := 1; i <= staffRows; i++ {
		rows = append(rows, &AttendanceRow{Roll: fmt.Sprintf("Invigilator%d", i)})
	}
	return rows
}

func overallRows(allocs []domain.Allocation) []*OverallRow {
	rows := make([]*OverallRow, 0, len(allocs))
	for _, a := range allocs {
		rows = append(rows, &OverallRow{
			Date:     a.Date.Format(domain.DateLayout),
			Day:      a.Day,
			Session:  string(a.Session),
			Course:   a.Course,
			Room:     a.Room,
			Count:    len(a.Students),
			RollList: strings.Join(a.Students, ";"),
		})
	}
	return rows
}

func seatsLeftRows(summaries []RoomSummary) []*SeatsLeftRow {
	rows := make([]*SeatsLeftRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, &SeatsLeftRow{
			Room:      s.Room,
			Capacity:  s.Capacity,
			Block:     string(s.Block),
			Allocated: s.Allocated,
			Vacant:    s.Vacant,
		})
	}
	return rows
}
