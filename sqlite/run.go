package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/DJCoolVR/soundboard"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ soundboard.RunService = (*RunService)(nil)

// RunService implements soundboard.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a run and assigns it a new ID.
func (s *RunService) CreateRun(ctx context.Context, run *soundboard.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, scraped, total, kept, added, stale,
			downloaded, skipped, failed, listing_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.FinishedAt.UTC().Format(time.RFC3339),
		run.Scraped, run.Total, run.Kept, run.Added, run.Stale,
		run.Downloaded, run.Skipped, run.Failed, run.ListingHash)

	return err
}

// FindRuns returns runs ordered from most recent to oldest.
func (s *RunService) FindRuns(ctx context.Context, filter soundboard.RunFilter) ([]*soundboard.Run, error) {
	var query strings.Builder
	query.WriteString(`
		SELECT id, started_at, finished_at, scraped, total, kept, added, stale,
			downloaded, skipped, failed, listing_hash
		FROM runs
		ORDER BY started_at DESC, rowid DESC`)
	var args []any
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*soundboard.Run
	for rows.Next() {
		var run soundboard.Run
		var startedAt, finishedAt string
		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Scraped, &run.Total,
			&run.Kept, &run.Added, &run.Stale, &run.Downloaded, &run.Skipped, &run.Failed,
			&run.ListingHash); err != nil {
			return nil, err
		}

		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
