package roster

import (
	"strings"

	"github.com/alexanderramin/examseat/internal/domain"
)

// Index answers roster lookups for one run: the students of a course, the
// courses of a student and the display name of a roll.
type Index struct {
	students map[string][]string
	courses  map[string][]string
	names    map[string]string
}

// New builds an Index from enrollment rows and a roll→name mapping.
// Course ids and rolls are trimmed. A course lists each roll once, in the
// order of its first enrollment row; blank rows are ignored.
func New(enrollments []domain.Enrollment, names map[string]string) *Index {
	idx := &Index{
		students: make(map[string][]string),
		courses:  make(map[string][]string),
		names:    make(map[string]string, len(names)),
	}

	seen := make(map[string]map[string]bool)
	for _, e := range enrollments {
		course := strings.TrimSpace(e.Course)
		roll := strings.TrimSpace(e.Roll)
		if course == "" || roll == "" {
			continue
		}
		if seen[course] == nil {
			seen[course] = make(map[string]bool)
		}
		if seen[course][roll] {
			continue
		}
		seen[course][roll] = true
		idx.students[course] = append(idx.students[course], roll)
		idx.courses[roll] = append(idx.courses[roll], course)
	}

	for roll, name := range names {
		idx.names[strings.TrimSpace(roll)] = strings.TrimSpace(name)
	}
	return idx
}

// Students returns a copy of the ordered roster of a course.
func (idx *Index) Students(course string) []string {
	src := idx.students[strings.TrimSpace(course)]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Size returns the roster size of a course.
func (idx *Index) Size(course string) int {
	return len(idx.students[strings.TrimSpace(course)])
}

// StudentSet returns the roster of a course as a set.
func (idx *Index) StudentSet(course string) map[string]struct{} {
	src := idx.students[strings.TrimSpace(course)]
	set := make(map[string]struct{}, len(src))
	for _, roll := range src {
		set[roll] = struct{}{}
	}
	return set
}

// Courses returns the courses a roll is enrolled in, in enrollment order.
func (idx *Index) Courses(roll string) []string {
	src := idx.courses[strings.TrimSpace(roll)]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Name returns the display name of a roll, or domain.UnknownName.
func (idx *Index) Name(roll string) string {
	if name, ok := idx.names[strings.TrimSpace(roll)]; ok && name != "" {
		return name
	}
	return domain.UnknownName
}

// Student returns the roll together with its display name.
func (idx *Index) Student(roll string) domain.Student {
	return domain.Student{Roll: roll, Name: idx.Name(roll)}
}

// CourseCount returns the number of courses with at least one student.
func (idx *Index) CourseCount() int {
	return len(idx.students)
}
