package importer

import (
	"bytes"
	"encoding/csv"
	"io"
	"io/fs"
	"os"

	"github.com/gocarina/gocsv"
)

func init() {
	gocsv.FailIfUnmatchedStructTags = true
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.TrimLeadingSpace = true
		r.FieldsPerRecord = -1
		return r
	})
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads, validates and converts the four input files of dir.
func Load(dir string) (*Input, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS is Load over any file system. Every problem across all files is
// collected before returning a *LoadError.
func LoadFS(fsys fs.FS) (*Input, error) {
	in := &Input{}
	lerr := &LoadError{}

	readFile(fsys, TimetableFile, &in.Timetable, lerr)
	readFile(fsys, EnrollmentFile, &in.Enrollments, lerr)
	readFile(fsys, NameFile, &in.Names, lerr)
	readFile(fsys, RoomCapacityFile, &in.Rooms, lerr)
	if err := lerr.orNil(); err != nil {
		return nil, err
	}

	for _, problem := range ValidateInput(in) {
		lerr.add("%s", problem)
	}
	if err := lerr.orNil(); err != nil {
		return nil, err
	}
	return in, nil
}

func readFile[T any](fsys fs.FS, name string, out *[]*T, lerr *LoadError) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		lerr.add("failed to open %s: %v", name, err)
		return
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if err := gocsv.UnmarshalBytes(data, out); err != nil {
		lerr.add("failed to parse %s: %v", name, err)
	}
}
