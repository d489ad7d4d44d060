package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/DJCoolVR/soundboard"
	"github.com/DJCoolVR/soundboard/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("creates run with generated ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		start := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

		run := &soundboard.Run{
			StartedAt:   start,
			FinishedAt:  start.Add(42 * time.Second),
			Scraped:     120,
			Total:       130,
			Kept:        110,
			Added:       10,
			Stale:       10,
			Downloaded:  9,
			Skipped:     120,
			Failed:      1,
			ListingHash: "abc123",
		}

		err := svc.CreateRun(context.Background(), run)
		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)

		runs, err := svc.FindRuns(context.Background(), soundboard.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		got := runs[0]
		assert.Equal(t, run.ID, got.ID)
		assert.True(t, start.Equal(got.StartedAt))
		assert.True(t, run.FinishedAt.Equal(got.FinishedAt))
		assert.Equal(t, 120, got.Scraped)
		assert.Equal(t, 130, got.Total)
		assert.Equal(t, 110, got.Kept)
		assert.Equal(t, 10, got.Added)
		assert.Equal(t, 10, got.Stale)
		assert.Equal(t, 9, got.Downloaded)
		assert.Equal(t, 120, got.Skipped)
		assert.Equal(t, 1, got.Failed)
		assert.Equal(t, "abc123", got.ListingHash)
	})

	t.Run("returns error for invalid run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.CreateRun(context.Background(), &soundboard.Run{})
		require.Error(t, err)
		assert.Equal(t, soundboard.EINVALID, soundboard.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns most recent first and honors limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

		for day := range 3 {
			start := base.Add(time.Duration(day) * 24 * time.Hour)
			require.NoError(t, svc.CreateRun(ctx, &soundboard.Run{
				StartedAt:  start,
				FinishedAt: start.Add(time.Minute),
				Total:      day,
			}))
		}

		runs, err := svc.FindRuns(ctx, soundboard.RunFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, 2, runs[0].Total)
		assert.Equal(t, 1, runs[1].Total)
	})

	t.Run("skips runs by offset with and without limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

		for day := range 4 {
			start := base.Add(time.Duration(day) * 24 * time.Hour)
			require.NoError(t, svc.CreateRun(ctx, &soundboard.Run{
				StartedAt:  start,
				FinishedAt: start.Add(time.Minute),
				Total:      day,
			}))
		}

		runs, err := svc.FindRuns(ctx, soundboard.RunFilter{Offset: 1})
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, 2, runs[0].Total)
		assert.Equal(t, 0, runs[2].Total)

		runs, err = svc.FindRuns(ctx, soundboard.RunFilter{Offset: 1, Limit: 2})
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, 2, runs[0].Total)
		assert.Equal(t, 1, runs[1].Total)
	})

	t.Run("returns empty slice when no runs", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		runs, err := svc.FindRuns(context.Background(), soundboard.RunFilter{})
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
