package slog

import (
	"context"
	"log/slog"

	"github.com/DJCoolVR/soundboard"
)

// Ensure LoggingRunService implements soundboard.RunService.
var _ soundboard.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging of recorded runs.
type LoggingRunService struct {
	next   soundboard.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next soundboard.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the stored run.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *soundboard.Run) error {
	err := s.next.CreateRun(ctx, run)
	s.logger.Info("run recorded",
		"id", run.ID,
		"total", run.Total,
		"added", run.Added,
		"stale", run.Stale,
		"downloaded", run.Downloaded,
		"failed", run.Failed,
		"duration", run.FinishedAt.Sub(run.StartedAt),
		"err", err,
	)
	return err
}

// FindRuns delegates to the wrapped service.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter soundboard.RunFilter) ([]*soundboard.Run, error) {
	return s.next.FindRuns(ctx, filter)
}
