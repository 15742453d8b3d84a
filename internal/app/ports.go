package app

import (
	"context"

	"github.com/alexanderramin/examseat/internal/domain"
)

type AllocateUseCase interface {
	Allocate(ctx context.Context, req AllocateRequest) (*AllocateResponse, error)
}

type ClashUseCase interface {
	Clashes(ctx context.Context, inputDir string) (*ClashResponse, error)
}

type RoomsUseCase interface {
	Rooms(ctx context.Context, inputDir string, cfg domain.RunConfig) (*RoomsResponse, error)
}

type RunHistoryUseCase interface {
	List(ctx context.Context, limit int) ([]*domain.Run, error)
	Get(ctx context.Context, id string) (*RunDetail, error)
	Delete(ctx context.Context, id string) error
}
