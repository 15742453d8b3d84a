package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFiles() fstest.MapFS {
	return fstest.MapFS{
		TimetableFile: {Data: []byte(
			"Date,Day,Morning,Evening\n" +
				"2025-11-03,Monday,CS101; MA102,NO EXAM\n" +
				"04-11-2025,,PH103,\n")},
		EnrollmentFile: {Data: []byte(
			"rollno,course_code\n" +
				" 2201CS01 ,CS101\n" +
				"2201CS02,CS101\n" +
				"2201CS02,MA102\n")},
		NameFile: {Data: []byte(
			"Roll,Name\n" +
				"2201CS01, Asha Rao\n")},
		RoomCapacityFile: {Data: []byte(
			"Room No.,Exam Capacity\n" +
				"6101,40\n" +
				"B-12,30\n")},
	}
}

func loadErr(t *testing.T, err error) *LoadError {
	t.Helper()
	var lerr *LoadError
	require.True(t, errors.As(err, &lerr), "want *LoadError, got %v", err)
	return lerr
}

func TestLoadFS_ValidInput(t *testing.T) {
	in, err := LoadFS(validFiles())
	require.NoError(t, err)

	require.Len(t, in.Timetable, 2)
	require.Len(t, in.Enrollments, 3)
	require.Len(t, in.Names, 1)
	require.Len(t, in.Rooms, 2)
	assert.Equal(t, "2201CS01", in.Enrollments[0].Roll, "fields are trimmed")
	assert.Equal(t, 30, in.Rooms[1].Capacity)
}

func TestToDataset(t *testing.T) {
	in, err := LoadFS(validFiles())
	require.NoError(t, err)

	ds, err := ToDataset(in)
	require.NoError(t, err)

	require.Len(t, ds.Timetable, 2)
	first := ds.Timetable[0]
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Monday", first.Day)
	assert.Equal(t, []string{"CS101", "MA102"}, first.Morning)
	assert.Nil(t, first.Evening)

	second := ds.Timetable[1]
	assert.Equal(t, time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC), second.Date)
	assert.Equal(t, "Tuesday", second.Day, "blank day derives from the date")
	assert.Equal(t, []string{"PH103"}, second.Morning)

	assert.Equal(t, domain.Enrollment{Course: "CS101", Roll: "2201CS01"}, ds.Enrollments[0])
	assert.Equal(t, map[string]string{"2201CS01": "Asha Rao"}, ds.Names)
	assert.Equal(t, []domain.RoomInput{{ID: "6101", Capacity: 40}, {ID: "B-12", Capacity: 30}}, ds.Rooms)
}

func TestLoadFS_MissingFilesAreAllReported(t *testing.T) {
	files := validFiles()
	delete(files, NameFile)
	delete(files, RoomCapacityFile)

	_, err := LoadFS(files)

	lerr := loadErr(t, err)
	require.Len(t, lerr.Problems, 2)
	assert.Contains(t, lerr.Problems[0], NameFile)
	assert.Contains(t, lerr.Problems[1], RoomCapacityFile)
	assert.Contains(t, err.Error(), "2 problems")
}

func TestLoadFS_MissingColumnIsFatal(t *testing.T) {
	files := validFiles()
	files[RoomCapacityFile] = &fstest.MapFile{Data: []byte("Room No.\n6101\n")}

	_, err := LoadFS(files)

	lerr := loadErr(t, err)
	require.Len(t, lerr.Problems, 1)
	assert.Contains(t, lerr.Problems[0], "failed to parse "+RoomCapacityFile)
}

func TestLoadFS_ValidationProblems(t *testing.T) {
	files := validFiles()
	files[TimetableFile] = &fstest.MapFile{Data: []byte(
		"Date,Day,Morning,Evening\n" +
			"31-31-2025,Monday,CS101,\n" +
			",Tuesday,CS101,\n")}
	files[RoomCapacityFile] = &fstest.MapFile{Data: []byte(
		"Room No.,Exam Capacity\n" +
			"6101,40\n" +
			"6101 ,20\n" +
			",10\n" +
			"B-1,-5\n")}

	_, err := LoadFS(files)

	lerr := loadErr(t, err)
	assert.Equal(t, []string{
		`in_timetable.csv line 2: invalid date "31-31-2025" (expected YYYY-MM-DD or DD-MM-YYYY)`,
		"in_timetable.csv line 3: Date is required",
		`in_room_capacity.csv line 3: duplicate room "6101" (first on line 2)`,
		"in_room_capacity.csv line 4: Room No. is required",
		"in_room_capacity.csv line 5: Exam Capacity must be >= 0, got -5",
	}, lerr.Problems)
}

func TestLoadFS_EmptyTablesAreFatal(t *testing.T) {
	files := validFiles()
	files[TimetableFile] = &fstest.MapFile{Data: []byte("Date,Day,Morning,Evening\n")}
	files[RoomCapacityFile] = &fstest.MapFile{Data: []byte("Room No.,Exam Capacity\n")}

	_, err := LoadFS(files)

	lerr := loadErr(t, err)
	assert.Equal(t, []string{
		"in_timetable.csv: at least one row is required",
		"in_room_capacity.csv: at least one room is required",
	}, lerr.Problems)
}

func TestLoadFS_StripsByteOrderMark(t *testing.T) {
	files := validFiles()
	files[RoomCapacityFile] = &fstest.MapFile{Data: append([]byte{0xEF, 0xBB, 0xBF}, []byte("Room No.,Exam Capacity\nLT1,100\n")...)}

	in, err := LoadFS(files)
	require.NoError(t, err)
	assert.Equal(t, "LT1", in.Rooms[0].ID)
}

func TestLoadDataset_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	for name, f := range validFiles() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), f.Data, 0o644))
	}

	ds, err := LoadDataset(dir)
	require.NoError(t, err)
	assert.Len(t, ds.Rooms, 2)

	_, err = LoadDataset(filepath.Join(dir, "missing"))
	loadErr(t, err)
}

func TestSplitCourses(t *testing.T) {
	assert.Equal(t, []string{"CS101", "MA102"}, SplitCourses(" CS101 ;MA102; "))
	assert.Nil(t, SplitCourses("NO EXAM"))
	assert.Nil(t, SplitCourses(" no exam "))
	assert.Nil(t, SplitCourses(""))
	assert.Equal(t, []string{"CS101"}, SplitCourses("CS101;NO EXAM"))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2025-11-03", "2025-11-03 00:00:00", "03-11-2025", "03/11/2025", "2025/11/03", "03.11.2025"} {
		got, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseDate("Nov 3")
	assert.Error(t, err)
}
