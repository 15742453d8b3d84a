package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/examseat/internal/app"
	"github.com/alexanderramin/examseat/internal/catalog"
	"github.com/alexanderramin/examseat/internal/db"
	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/importer"
	"github.com/alexanderramin/examseat/internal/metrics"
	"github.com/alexanderramin/examseat/internal/report"
	"github.com/alexanderramin/examseat/internal/repository"
	"github.com/alexanderramin/examseat/internal/seating"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type seatingService struct {
	engine   *seating.Engine
	exporter *report.Exporter
	uow      db.UnitOfWork
	logger   *zap.Logger
	observer UseCaseObserver
}

// NewSeatingService wires the allocation use cases. A nil uow disables
// saving regardless of the request.
func NewSeatingService(
	engine *seating.Engine,
	exporter *report.Exporter,
	uow db.UnitOfWork,
	logger *zap.Logger,
	observers ...UseCaseObserver,
) SeatingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &seatingService{
		engine:   engine,
		exporter: exporter,
		uow:      uow,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *seatingService) Allocate(ctx context.Context, req app.AllocateRequest) (resp *app.AllocateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"input":  req.InputDir,
		"buffer": req.Buffer,
		"mode":   string(req.Mode),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "allocate",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	ds, err := s.load(req.InputDir)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Run(ds, req.Config())
	if err != nil {
		return nil, classify(err)
	}
	elapsed := time.Since(startedAt)

	now := startedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}
	run := &domain.Run{
		ID:              uuid.New().String(),
		InputDir:        req.InputDir,
		Buffer:          req.Buffer,
		Mode:            req.Mode,
		AllocationCount: len(res.Allocations),
		SeatedCount:     res.SeatedCount(),
		ShortfallCount:  res.ShortfallCount(),
		ClashCount:      res.ClashCount(),
		CreatedAt:       now,
	}
	resp = &app.AllocateResponse{Run: run, Result: res}
	fields["run_id"] = run.DisplayID()
	fields["seated"] = run.SeatedCount
	fields["unseated"] = run.ShortfallCount
	fields["clashes"] = run.ClashCount

	if req.Export {
		run.OutputDir = req.OutputDir
		resp.Export = s.export(req.OutputDir, res)
		fields["export_failures"] = len(resp.Export.Failures)
	}

	if req.Save && s.uow != nil {
		if err = s.save(ctx, run, res); err != nil {
			return nil, &app.AllocateError{Code: app.AllocateErrPersistence, Message: "saving run", Err: err}
		}
		resp.Saved = true
	}

	if req.MetricsFile != "" {
		m := metrics.NewRunMetrics()
		m.Observe(res, elapsed)
		if werr := m.WriteTextfile(req.MetricsFile); werr != nil {
			s.logger.Warn("metrics textfile not written", zap.String("path", req.MetricsFile), zap.Error(werr))
		}
	}

	return resp, nil
}

func (s *seatingService) Clashes(ctx context.Context, inputDir string) (resp *app.ClashResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"input": inputDir}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "clashes",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	ds, err := s.load(inputDir)
	if err != nil {
		return nil, err
	}

	resp = &app.ClashResponse{Diagnostics: seating.TimetableClashes(ds)}
	for _, row := range ds.Timetable {
		for _, session := range domain.Sessions {
			if len(seating.SlotCourses(row.Courses(session))) > 0 {
				resp.Slots++
			}
		}
	}
	fields["slots"] = resp.Slots
	fields["clashes"] = len(resp.Diagnostics)
	return resp, nil
}

func (s *seatingService) Rooms(ctx context.Context, inputDir string, cfg domain.RunConfig) (resp *app.RoomsResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "rooms",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"input": inputDir},
		})
	}()

	if err = s.engine.Validate(cfg); err != nil {
		return nil, classify(err)
	}
	ds, err := s.load(inputDir)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.New(ds.Rooms, cfg.Buffer, cfg.Mode)
	if err != nil {
		return nil, &app.AllocateError{Code: app.AllocateErrInvalidConfig, Message: "building room catalog", Err: err}
	}

	resp = &app.RoomsResponse{
		Rooms:                  cat.Rooms(),
		Buffer:                 cat.Buffer(),
		Mode:                   cat.Mode(),
		TotalEffectiveCapacity: cat.TotalEffectiveCapacity(),
	}
	for _, r := range resp.Rooms {
		resp.TotalCapacity += r.Capacity
	}
	return resp, nil
}

func (s *seatingService) load(dir string) (*domain.Dataset, error) {
	ds, err := importer.LoadDataset(dir)
	if err != nil {
		return nil, &app.AllocateError{Code: app.AllocateErrInvalidInput, Message: "loading " + dir, Err: err}
	}
	return ds, nil
}

func (s *seatingService) export(dir string, res *seating.Result) *report.ExportReport {
	rep, err := s.exporter.Write(dir, res, res.Roster)
	if err != nil {
		s.logger.Error("export skipped", zap.String("dir", dir), zap.Error(err))
		return &report.ExportReport{Failures: []string{err.Error()}}
	}
	return rep
}

func (s *seatingService) save(ctx context.Context, run *domain.Run, res *seating.Result) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteRunRepo(tx).Create(ctx, run); err != nil {
			return err
		}
		if err := repository.NewSQLiteAllocationRepo(tx).CreateBatch(ctx, run.ID, res.Allocations); err != nil {
			return err
		}
		if err := repository.NewSQLiteDiagnosticRepo(tx).CreateBatch(ctx, run.ID, res.Diagnostics); err != nil {
			return fmt.Errorf("saving diagnostics: %w", err)
		}
		return nil
	})
}

func classify(err error) error {
	var cfgErr *seating.ConfigError
	if errors.As(err, &cfgErr) {
		return &app.AllocateError{Code: app.AllocateErrInvalidConfig, Message: "invalid run configuration", Err: err}
	}
	return &app.AllocateError{Code: app.AllocateErrInternal, Message: "running allocation", Err: err}
}
