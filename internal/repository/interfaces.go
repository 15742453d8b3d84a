package repository

import (
	"context"

	"github.com/alexanderramin/examseat/internal/domain"
)

type RunRepo interface {
	Create(ctx context.Context, r *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	GetByPrefix(ctx context.Context, prefix string) (*domain.Run, error)
	List(ctx context.Context, limit int) ([]*domain.Run, error)
	Delete(ctx context.Context, id string) error
}

// AllocationRepo stores the allocation records of a run in their original
// order.
type AllocationRepo interface {
	CreateBatch(ctx context.Context, runID string, allocs []domain.Allocation) error
	ListByRun(ctx context.Context, runID string) ([]domain.Allocation, error)
}

type DiagnosticRepo interface {
	CreateBatch(ctx context.Context, runID string, diags []domain.Diagnostic) error
	ListByRun(ctx context.Context, runID string) ([]domain.Diagnostic, error)
}
