package mock

import (
	"context"

	"github.com/DJCoolVR/soundboard"
)

var _ soundboard.RunService = (*RunService)(nil)

// RunService is a mock implementation of soundboard.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *soundboard.Run) error
	FindRunsFn  func(ctx context.Context, filter soundboard.RunFilter) ([]*soundboard.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *soundboard.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter soundboard.RunFilter) ([]*soundboard.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
