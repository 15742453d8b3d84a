package seating

import (
	"sort"

	"github.com/alexanderramin/examseat/internal/roster"
)

// Clash is a pair of co-scheduled courses with at least one shared student.
type Clash struct {
	CourseA string
	CourseB string
	Shared  []string
}

// DetectClashes intersects the rosters of every unordered pair of distinct
// courses, in the order given, and returns the non-empty intersections with
// the shared rolls sorted. The result is diagnostic only.
func DetectClashes(courses []string, idx *roster.Index) []Clash {
	courses = uniqueCourses(courses)
	if len(courses) < 2 {
		return nil
	}

	sets := make([]map[string]struct{}, len(courses))
	for i, c := range courses {
		sets[i] = idx.StudentSet(c)
	}

	var clashes []Clash
	for i := 0; i < len(courses); i++ {
		for j := i + 1; j < len(courses); j++ {
			small, large := sets[i], sets[j]
			if len(small) > len(large) {
				small, large = large, small
			}
			var shared []string
			for roll := range small {
				if _, ok := large[roll]; ok {
					shared = append(shared, roll)
				}
			}
			if len(shared) == 0 {
				continue
			}
			sort.Strings(shared)
			clashes = append(clashes, Clash{CourseA: courses[i], CourseB: courses[j], Shared: shared})
		}
	}
	return clashes
}

// uniqueCourses drops repeated course ids, keeping the first occurrence.
func uniqueCourses(courses []string) []string {
	seen := make(map[string]bool, len(courses))
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
