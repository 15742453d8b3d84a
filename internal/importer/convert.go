package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/examseat/internal/domain"
)

// dateLayouts are tried in order when parsing timetable dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02.01.2006",
}

// ParseDate parses a timetable date in any supported layout.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or DD-MM-YYYY)", s)
}

// SplitCourses splits a semicolon-separated session cell into course codes.
// An empty cell or NO EXAM yields nil; a NO EXAM entry among courses is dropped.
func SplitCourses(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, domain.NoExam) {
		return nil
	}
	var out []string
	for _, part := range strings.Split(cell, ";") {
		if c := strings.TrimSpace(part); c != "" && !strings.EqualFold(c, domain.NoExam) {
			out = append(out, c)
		}
	}
	return out
}

// ToDataset converts validated rows into the engine's dataset. A blank Day
// is derived from the date.
func ToDataset(in *Input) (*domain.Dataset, error) {
	ds := &domain.Dataset{
		Timetable:   make([]domain.TimetableRow, 0, len(in.Timetable)),
		Enrollments: make([]domain.Enrollment, 0, len(in.Enrollments)),
		Names:       make(map[string]string, len(in.Names)),
		Rooms:       make([]domain.RoomInput, 0, len(in.Rooms)),
	}

	for i, row := range in.Timetable {
		date, err := ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", TimetableFile, i+2, err)
		}
		ds.Timetable = append(ds.Timetable, domain.TimetableRow{
			Date:    date,
			Day:     domain.CoalesceStr(strings.TrimSpace(row.Day), date.Weekday().String()),
			Morning: SplitCourses(row.Morning),
			Evening: SplitCourses(row.Evening),
		})
	}

	for _, row := range in.Enrollments {
		ds.Enrollments = append(ds.Enrollments, domain.Enrollment{
			Course: strings.TrimSpace(row.Course),
			Roll:   strings.TrimSpace(row.Roll),
		})
	}

	for _, row := range in.Names {
		ds.Names[strings.TrimSpace(row.Roll)] = strings.TrimSpace(row.Name)
	}

	for _, row := range in.Rooms {
		ds.Rooms = append(ds.Rooms, domain.RoomInput{
			ID:       strings.TrimSpace(row.ID),
			Capacity: row.Capacity,
		})
	}

	return ds, nil
}

// LoadDataset loads dir and converts it in one step.
func LoadDataset(dir string) (*domain.Dataset, error) {
	in, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return ToDataset(in)
}
