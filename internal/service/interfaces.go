package service

import (
	"context"

	"github.com/alexanderramin/examseat/internal/app"
	"github.com/alexanderramin/examseat/internal/domain"
)

type SeatingService interface {
	Allocate(ctx context.Context, req app.AllocateRequest) (*app.AllocateResponse, error)
	Clashes(ctx context.Context, inputDir string) (*app.ClashResponse, error)
	Rooms(ctx context.Context, inputDir string, cfg domain.RunConfig) (*app.RoomsResponse, error)
}

type RunService interface {
	List(ctx context.Context, limit int) ([]*domain.Run, error)
	Get(ctx context.Context, id string) (*app.RunDetail, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ app.AllocateUseCase   = SeatingService(nil)
	_ app.ClashUseCase      = SeatingService(nil)
	_ app.RoomsUseCase      = SeatingService(nil)
	_ app.RunHistoryUseCase = RunService(nil)
)
