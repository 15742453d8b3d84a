package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/examseat/internal/catalog"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("csv"); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	return v
}

// ValidateInput checks the parsed rows before conversion and returns every
// problem found. Row numbers count the header as line 1.
func ValidateInput(in *Input) []string {
	var problems []string

	if len(in.Timetable) == 0 {
		problems = append(problems, fmt.Sprintf("%s: at least one row is required", TimetableFile))
	}
	for i, row := range in.Timetable {
		problems = append(problems, validateRow(TimetableFile, i, row)...)
		if strings.TrimSpace(row.Date) == "" {
			continue
		}
		if _, err := ParseDate(row.Date); err != nil {
			problems = append(problems, fmt.Sprintf("%s line %d: %v", TimetableFile, i+2, err))
		}
	}

	for i, row := range in.Enrollments {
		problems = append(problems, validateRow(EnrollmentFile, i, row)...)
	}
	for i, row := range in.Names {
		problems = append(problems, validateRow(NameFile, i, row)...)
	}

	if len(in.Rooms) == 0 {
		problems = append(problems, fmt.Sprintf("%s: at least one room is required", RoomCapacityFile))
	}
	seen := make(map[string]int)
	for i, row := range in.Rooms {
		problems = append(problems, validateRow(RoomCapacityFile, i, row)...)
		id := catalog.NormalizeID(row.ID)
		if id == "" {
			continue
		}
		if first, dup := seen[id]; dup {
			problems = append(problems, fmt.Sprintf("%s line %d: duplicate room %q (first on line %d)", RoomCapacityFile, i+2, id, first))
			continue
		}
		seen[id] = i + 2
	}

	return problems
}

func validateRow(file string, i int, row any) []string {
	trimStrings(row)
	err := validate.Struct(row)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("%s line %d: %v", file, i+2, err)}
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s line %d: %s is required", file, i+2, fe.Field()))
		case "gte":
			problems = append(problems, fmt.Sprintf("%s line %d: %s must be >= %s, got %v", file, i+2, fe.Field(), fe.Param(), fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s line %d: %s failed %q", file, i+2, fe.Field(), fe.Tag()))
		}
	}
	return problems
}

// trimStrings trims every string field of a row struct in place.
func trimStrings(row any) {
	v := reflect.ValueOf(row)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
