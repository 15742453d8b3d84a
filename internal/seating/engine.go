package seating

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/examseat/internal/catalog"
	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/roster"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Engine runs the seating allocation over a whole timetable.
type Engine struct {
	logger   *zap.Logger
	validate *validator.Validate
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an Engine. Without options it logs nothing.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop(), validate: validator.New()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run processes the timetable row by row, Morning before Evening. For each
// slot it reports clashes, then seats courses largest roster first. Every
// call uses a fresh ledger. Shortfalls never stop the run; only invalid
// configuration or rooms return an error.
func (e *Engine) Run(ds *domain.Dataset, cfg domain.RunConfig) (*Result, error) {
	if ds == nil {
		return nil, &ConfigError{Problems: []string{"dataset is required"}}
	}
	if err := e.Validate(cfg); err != nil {
		return nil, err
	}

	rooms, err := catalog.New(ds.Rooms, cfg.Buffer, cfg.Mode)
	if err != nil {
		return nil, &ConfigError{Problems: []string{err.Error()}}
	}
	idx := roster.New(ds.Enrollments, ds.Names)
	allocator := NewAllocator(rooms, NewLedger(), e.logger)

	res := &Result{Config: cfg, Rooms: rooms.Rooms(), Roster: idx}
	started := time.Now()
	e.logger.Info("starting timetable processing",
		zap.Int("days", len(ds.Timetable)),
		zap.Int("rooms", rooms.Len()),
		zap.Int("buffer", cfg.Buffer),
		zap.String("mode", string(cfg.Mode)),
	)

	for _, row := range ds.Timetable {
		for _, session := range domain.Sessions {
			e.runSlot(res, allocator, idx, row, session)
		}
	}

	e.logger.Info("timetable processing completed",
		zap.Int("allocations", len(res.Allocations)),
		zap.Int("seated", res.SeatedCount()),
		zap.Int("unseated", res.ShortfallCount()),
		zap.Int("clashes", res.ClashCount()),
		zap.Duration("elapsed", time.Since(started)),
	)
	return res, nil
}

// Validate checks a run configuration and returns a *ConfigError listing
// every problem.
func (e *Engine) Validate(cfg domain.RunConfig) error {
	if err := e.validate.Struct(cfg); err != nil {
		return &ConfigError{Problems: validationProblems(err)}
	}
	return nil
}

func (e *Engine) runSlot(res *Result, allocator *Allocator, idx *roster.Index, row domain.TimetableRow, session domain.SessionLabel) {
	courses := SlotCourses(row.Courses(session))
	if len(courses) == 0 {
		return
	}
	slot := domain.NewSlot(row.Date, session)

	for _, c := range DetectClashes(courses, idx) {
		d := clashDiagnostic(slot, c)
		e.logger.Warn(d.Message,
			zap.String("slot", slot.Key()),
			zap.Strings("courses", d.Courses),
			zap.Int("shared", len(c.Shared)),
		)
		res.Diagnostics = append(res.Diagnostics, d)
	}

	sizes := make([]courseSize, len(courses))
	for i, c := range courses {
		sizes[i] = courseSize{Course: c, Size: idx.Size(c)}
	}
	orderCourses(sizes)

	for _, cs := range sizes {
		out := allocator.Allocate(cs.Course, idx.Students(cs.Course), slot, row.Day)
		res.Outcomes = append(res.Outcomes, out)
		res.Allocations = append(res.Allocations, out.Allocations...)
		if !out.Success {
			d := ShortfallDiagnostic(out)
			e.logger.Error(d.Message,
				zap.String("course", out.Course),
				zap.String("slot", slot.Key()),
				zap.Int("unseated", out.Shortfall),
			)
			res.Diagnostics = append(res.Diagnostics, d)
		}
	}
}

// TimetableClashes reports the clashes of every slot without allocating
// any rooms. The diagnostics match those of a full Run.
func TimetableClashes(ds *domain.Dataset) []domain.Diagnostic {
	if ds == nil {
		return nil
	}
	idx := roster.New(ds.Enrollments, ds.Names)
	var out []domain.Diagnostic
	for _, row := range ds.Timetable {
		for _, session := range domain.Sessions {
			slot := domain.NewSlot(row.Date, session)
			for _, c := range DetectClashes(SlotCourses(row.Courses(session)), idx) {
				out = append(out, clashDiagnostic(slot, c))
			}
		}
	}
	return out
}

// SlotCourses cleans a session's course list: entries are trimmed, and blank,
// repeated and NO EXAM entries are dropped. A marker next to real courses does not
// hide them.
func SlotCourses(raw []string) []string {
	var out []string
	seen := make(map[string]bool, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(c)
		if c == "" || strings.EqualFold(c, domain.NoExam) {
			continue
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func clashDiagnostic(slot domain.Slot, c Clash) domain.Diagnostic {
	return domain.Diagnostic{
		Severity: domain.SeverityWarning,
		Kind:     domain.KindClash,
		Date:     slot.Date,
		Session:  slot.Session,
		Courses:  []string{c.CourseA, c.CourseB},
		Students: c.Shared,
		Count:    len(c.Shared),
		Message: fmt.Sprintf("CLASH DETECTED on %s (%s): %s and %s have common students: %s",
			slot.DateKey(), slot.Session, c.CourseA, c.CourseB, strings.Join(c.Shared, ", ")),
	}
}

func validationProblems(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Buffer":
			problems = append(problems, fmt.Sprintf("buffer must be non-negative, got %v", fe.Value()))
		case "Mode":
			problems = append(problems, fmt.Sprintf("mode must be dense or sparse, got %q", fe.Value()))
		default:
			problems = append(problems, fe.Error())
		}
	}
	return problems
}
