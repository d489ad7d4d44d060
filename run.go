package soundboard

import (
	"context"
	"time"
)

// Run records the outcome of one sync.
type Run struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt"`
	Scraped     int       `json:"scraped"`
	Total       int       `json:"total"`
	Kept        int       `json:"kept"`
	Added       int       `json:"added"`
	Stale       int       `json:"stale"`
	Downloaded  int       `json:"downloaded"`
	Skipped     int       `json:"skipped"`
	Failed      int       `json:"failed"`
	ListingHash string    `json:"listingHash"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.StartedAt.IsZero() {
		return Errorf(EINVALID, "run start time required")
	}
	if r.FinishedAt.Before(r.StartedAt) {
		return Errorf(EINVALID, "run cannot finish before it starts")
	}
	return nil
}

// RunService represents a service for recording sync runs.
type RunService interface {
	// CreateRun stores a run and assigns its ID.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns returns runs, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
