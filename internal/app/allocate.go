package app

import (
	"time"

	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/report"
	"github.com/alexanderramin/examseat/internal/seating"
)

type AllocateRequest struct {
	InputDir    string
	Buffer      int
	Mode        domain.Mode
	OutputDir   string
	Save        bool
	Export      bool
	MetricsFile string // empty skips the textfile
	Now         *time.Time
}

func NewAllocateRequest(inputDir string) AllocateRequest {
	return AllocateRequest{
		InputDir:  inputDir,
		Mode:      domain.ModeDense,
		OutputDir: "output",
		Save:      true,
		Export:    true,
	}
}

// Config returns the engine configuration of the request.
func (r AllocateRequest) Config() domain.RunConfig {
	return domain.RunConfig{Buffer: r.Buffer, Mode: r.Mode}
}

type AllocateResponse struct {
	Run    *domain.Run
	Result *seating.Result
	// Export is nil when export was not requested.
	Export *report.ExportReport
	Saved  bool
}

type ClashResponse struct {
	Slots       int
	Diagnostics []domain.Diagnostic
}

type RoomsResponse struct {
	Rooms                  []domain.Room
	Buffer                 int
	Mode                   domain.Mode
	TotalCapacity          int
	TotalEffectiveCapacity int
}

// RunDetail is a stored run with everything it produced.
type RunDetail struct {
	Run         *domain.Run
	Allocations []domain.Allocation
	Diagnostics []domain.Diagnostic
}

type AllocateErrorCode string

const (
	AllocateErrInvalidInput  AllocateErrorCode = "INVALID_INPUT"
	AllocateErrInvalidConfig AllocateErrorCode = "INVALID_CONFIG"
	AllocateErrPersistence   AllocateErrorCode = "PERSISTENCE"
	AllocateErrInternal      AllocateErrorCode = "INTERNAL_ERROR"
)

type AllocateError struct {
	Code    AllocateErrorCode
	Message string
	Err     error
}

func (e *AllocateError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *AllocateError) Unwrap() error {
	return e.Err
}
