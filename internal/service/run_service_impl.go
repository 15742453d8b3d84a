package service

import (
	"context"

	"github.com/alexanderramin/examseat/internal/app"
	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/repository"
)

type runService struct {
	runs        repository.RunRepo
	allocations repository.AllocationRepo
	diagnostics repository.DiagnosticRepo
}

func NewRunService(runs repository.RunRepo, allocations repository.AllocationRepo, diagnostics repository.DiagnosticRepo) RunService {
	return &runService{runs: runs, allocations: allocations, diagnostics: diagnostics}
}

func (s *runService) List(ctx context.Context, limit int) ([]*domain.Run, error) {
	return s.runs.List(ctx, limit)
}

// Get accepts a full run ID or any unambiguous prefix of one.
func (s *runService) Get(ctx context.Context, id string) (*app.RunDetail, error) {
	run, err := s.runs.GetByPrefix(ctx, id)
	if err != nil {
		return nil, err
	}
	allocs, err := s.allocations.ListByRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	diags, err := s.diagnostics.ListByRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	return &app.RunDetail{Run: run, Allocations: allocs, Diagnostics: diags}, nil
}

func (s *runService) Delete(ctx context.Context, id string) error {
	run, err := s.runs.GetByPrefix(ctx, id)
	if err != nil {
		return err
	}
	return s.runs.Delete(ctx, run.ID)
}
