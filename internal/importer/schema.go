package importer

// Input file names inside an input directory. They mirror the sheet names of
// the exam office workbook.
const (
	TimetableFile    = "in_timetable.csv"
	EnrollmentFile   = "in_course_roll_mapping.csv"
	NameFile         = "in_roll_name_mapping.csv"
	RoomCapacityFile = "in_room_capacity.csv"
)

// TimetableRow is one line of the timetable. Morning and Evening hold
// semicolon-separated course codes or "NO EXAM".
type TimetableRow struct {
	Date    string `csv:"Date" validate:"required"`
	Day     string `csv:"Day"`
	Morning string `csv:"Morning"`
	Evening string `csv:"Evening"`
}

// EnrollmentRow maps one roll to one course.
type EnrollmentRow struct {
	Roll   string `csv:"rollno" validate:"required"`
	Course string `csv:"course_code" validate:"required"`
}

// NameRow maps a roll to a display name.
type NameRow struct {
	Roll string `csv:"Roll" validate:"required"`
	Name string `csv:"Name"`
}

// RoomRow is one room of the capacity table.
type RoomRow struct {
	ID       string `csv:"Room No." validate:"required"`
	Capacity int    `csv:"Exam Capacity" validate:"gte=0"`
}

// Input holds the raw rows of all four files.
type Input struct {
	Timetable   []*TimetableRow
	Enrollments []*EnrollmentRow
	Names       []*NameRow
	Rooms       []*RoomRow
}
