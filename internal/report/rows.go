package report

// OverallRow is one line of op_overall_seating_arrangement.csv.
type OverallRow struct {
	Date     string `csv:"Date"`
	Day      string `csv:"Day"`
	Session  string `csv:"Session"`
	Course   string `csv:"course_code"`
	Room     string `csv:"Room"`
	Count    int    `csv:"Allocated_students_count"`
	RollList string `csv:"Roll_list (semicolon separated_)"`
}

// SeatsLeftRow is one line of op_seats_left.csv.
type SeatsLeftRow struct {
	Room      string `csv:"Room No."`
	Capacity  int    `csv:"Exam Capacity"`
	Block     string `csv:"Block"`
	Allocated int    `csv:"Alloted"`
	Vacant    int    `csv:"Vacant (B-C)"`
}

// AttendanceRow is one line of a per-room attendance sheet.
type AttendanceRow struct {
	Roll      string `csv:"Roll"`
	Name      string `csv:"Student Name"`
	Signature string `csv:"Signature"`
}
