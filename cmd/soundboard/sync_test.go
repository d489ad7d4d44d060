package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/DJCoolVR/soundboard"
	main "github.com/DJCoolVR/soundboard/cmd/soundboard"
	"github.com/DJCoolVR/soundboard/fs"
	"github.com/DJCoolVR/soundboard/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncFixture holds mocks preconfigured for a successful sync of
// old catalog [/a.mp3, /b.mp3] against fresh listing [/b.mp3, /c.mp3].
type syncFixture struct {
	deps     *main.Dependencies
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	locker   *mock.Locker
	catalog  *mock.CatalogStore
	listing  *mock.ListingFetcher
	assets   *mock.AssetFetcher
	runs     *mock.RunService
	saved    *soundboard.Catalog
	fetched  bool
	unlocked bool
	recorded *soundboard.Run
}

func newSyncFixture() *syncFixture {
	f := &syncFixture{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	f.locker = &mock.Locker{
		TryLockFn: func() (bool, error) { return true, nil },
		UnlockFn: func() error {
			f.unlocked = true
			return nil
		},
	}
	f.catalog = &mock.CatalogStore{
		LoadFn: func(_ context.Context) (*soundboard.Catalog, error) {
			return &soundboard.Catalog{
				Prefix: "var sounds = ",
				Sounds: []soundboard.Sound{
					{Name: soundboard.StringPtr("A"), MP3: "/a.mp3"},
					{Name: soundboard.StringPtr("B old"), MP3: "/b.mp3"},
				},
			}, nil
		},
		SaveFn: func(_ context.Context, catalog *soundboard.Catalog) error {
			f.saved = catalog
			return nil
		},
	}
	f.listing = &mock.ListingFetcher{
		FetchListingFn: func(_ context.Context) ([]soundboard.Sound, error) {
			f.fetched = true
			return []soundboard.Sound{
				{Name: soundboard.StringPtr("B new"), MP3: "/b.mp3"},
				{Name: soundboard.StringPtr("C"), MP3: "/c.mp3"},
			}, nil
		},
	}
	f.assets = &mock.AssetFetcher{
		EnsureDownloadedFn: func(_ context.Context, sounds []soundboard.Sound) (*soundboard.DownloadResult, error) {
			return &soundboard.DownloadResult{Downloaded: 1, Skipped: 2}, nil
		},
	}
	f.runs = &mock.RunService{
		CreateRunFn: func(_ context.Context, run *soundboard.Run) error {
			f.recorded = run
			return nil
		},
	}

	f.deps = &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  f.stdout,
		Stderr:  f.stderr,
		Lock:    f.locker,
		Catalog: f.catalog,
		Listing: f.listing,
		Assets:  f.assets,
		Runs:    f.runs,
	}
	return f
}

func TestSyncCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves the merged catalog and downloads it", func(t *testing.T) {
		t.Parallel()

		// Given
		f := newSyncFixture()
		var downloaded []soundboard.Sound
		f.assets.EnsureDownloadedFn = func(_ context.Context, sounds []soundboard.Sound) (*soundboard.DownloadResult, error) {
			require.NotNil(t, f.saved, "catalog must be saved before downloads start")
			downloaded = sounds
			return &soundboard.DownloadResult{Downloaded: 1, Skipped: 2}, nil
		}

		// When
		err := (&main.SyncCmd{Catalog: "sounds.js"}).Run(f.deps)

		// Then
		require.NoError(t, err)
		require.NotNil(t, f.saved)
		assert.Equal(t, "var sounds = ", f.saved.Prefix)
		require.Len(t, f.saved.Sounds, 3)
		assert.Equal(t, "/b.mp3", f.saved.Sounds[0].MP3)
		assert.Equal(t, "B new", *f.saved.Sounds[0].Name)
		assert.Equal(t, "/c.mp3", f.saved.Sounds[1].MP3)
		assert.Equal(t, "/a.mp3", f.saved.Sounds[2].MP3)
		assert.Equal(t, f.saved.Sounds, downloaded)
		assert.True(t, f.unlocked)

		output := f.stdout.String()
		assert.Contains(t, output, "[SCRAPE] Collected 2 sounds")
		assert.Contains(t, output, "[MERGE] 3 sounds: 1 kept, 1 added, 1 stale")
		assert.Contains(t, output, "[DL] 1 downloaded, 2 skipped, 0 failed")
	})

	t.Run("records the run", func(t *testing.T) {
		t.Parallel()

		f := newSyncFixture()

		err := (&main.SyncCmd{Catalog: "sounds.js"}).Run(f.deps)

		require.NoError(t, err)
		require.NotNil(t, f.recorded)
		assert.Equal(t, 2, f.recorded.Scraped)
		assert.Equal(t, 3, f.recorded.Total)
		assert.Equal(t, 1, f.recorded.Kept)
		assert.Equal(t, 1, f.recorded.Added)
		assert.Equal(t, 1, f.recorded.Stale)
		assert.Equal(t, 1, f.recorded.Downloaded)
		assert.Equal(t, 2, f.recorded.Skipped)
		assert.False(t, f.recorded.StartedAt.IsZero())
		assert.False(t, f.recorded.FinishedAt.Before(f.recorded.StartedAt))

		wantHash, err := fs.ListingHash(f.saved.Sounds)
		require.NoError(t, err)
		assert.Equal(t, wantHash, f.recorded.ListingHash)
	})

	t.Run("fails with ECONFLICT when another sync holds the lock", func(t *testing.T) {
		t.Parallel()

		f := newSyncFixture()
		f.locker.TryLockFn = func() (bool, error) { return false, nil }
		f.catalog.LoadFn = func(_ context.Context) (*soundboard.Catalog, error) {
			t.Fatal("catalog must not be loaded without the lock")
			return nil, nil
		}

		err := (&main.SyncCmd{Catalog: "sounds.js"}).Run(f.deps)

		require.Error(t, err)
		assert.Equal(t, soundboard.ECONFLICT, soundboard.ErrorCode(err))
		assert.Contains(t, f.stderr.String(), "error: another sync is running")
		assert.False(t, f.unlocked)
	})

	t.Run("aborts before scraping when the catalog is malformed", func(t *testing.T) {
		t.Parallel()

		f := newSyncFixture()
		f.catalog.LoadFn = func(_ context.Context) (*soundboard.Catalog, error) {
			return nil, soundboard.Errorf(soundboard.EFORMAT, "catalog sounds.js has no splitter line")
		}
		f.catalog.SaveFn = func(_ context.Context, _ *soundboard.Catalog) error {
			t.Fatal("malformed catalog must not be overwritten")
			return nil
		}

		err := (&main.SyncCmd{Catalog: "sounds.js"}).Run(f.deps)

		require.Error(t, err)
		assert.Equal(t, soundboard.EFORMAT, soundboard.ErrorCode(err))
		assert.False(t, f.fetched)
		assert.Nil(t, f.recorded)
		assert.True(t, f.unlocked)
		assert.Contains(t, f.stderr.String(), "error: catalog sounds.js has no splitter line")
	})

	t.Run("does not save when the listing is canceled", func(t *testing.T) {
		t.Parallel()

		f := newSyncFixture()
		f.listing.FetchListingFn = func(_ context.Context) ([]soundboard.Sound, error) {
			return nil, context.Canceled
		}
		f.catalog.SaveFn = func(_ context.Context, _ *soundboard.Catalog) error {
			t.Fatal("catalog must not be saved after cancellation")
			return nil
		}

		err := (&main.SyncCmd{Catalog: "sounds.js"}).Run(f.deps)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("keeps the old catalog when the listing is empty", func(t *testing.T) {
		t.Parallel()

		f := newSyncFixture()
		f.listing.FetchListingFn = func(_ context.Context) ([]soundboard.Sound, error) {
			return nil, nil
		}

		err := (&main.SyncCmd{Catalog: "sounds.js"}).Run(f.deps)

		require.NoError(t, err)
		require.Len(t, f.saved.Sounds, 2)
		assert.Equal(t, "/a.mp3", f.saved.Sounds[0].MP3)
		assert.Equal(t, "/b.mp3", f.saved.Sounds[1].MP3)
		assert.Equal(t, 2, f.recorded.Stale)
	})

	t.Run("skips downloads when asked", func(t *testing.T) {
		t.Parallel()

		f := newSyncFixture()
		f.assets.EnsureDownloadedFn = func(_ context.Context, _ []soundboard.Sound) (*soundboard.DownloadResult, error) {
			t.Fatal("downloads must be skipped")
			return nil, nil
		}

		err := (&main.SyncCmd{Catalog: "sounds.js", SkipDownload: true}).Run(f.deps)

		require.NoError(t, err)
		assert.NotContains(t, f.stdout.String(), "[DL]")
		assert.Equal(t, 0, f.recorded.Downloaded)
	})

	t.Run("does not record when history is disabled", func(t *testing.T) {
		t.Parallel()

		f := newSyncFixture()

		err := (&main.SyncCmd{Catalog: "sounds.js", NoHistory: true}).Run(f.deps)

		require.NoError(t, err)
		assert.Nil(t, f.recorded)
	})

	t.Run("returns save errors", func(t *testing.T) {
		t.Parallel()

		f := newSyncFixture()
		saveErr := errors.New("disk full")
		f.catalog.SaveFn = func(_ context.Context, _ *soundboard.Catalog) error {
			return saveErr
		}
		f.assets.EnsureDownloadedFn = func(_ context.Context, _ []soundboard.Sound) (*soundboard.DownloadResult, error) {
			t.Fatal("downloads must not start when the save fails")
			return nil, nil
		}

		err := (&main.SyncCmd{Catalog: "sounds.js"}).Run(f.deps)

		assert.ErrorIs(t, err, saveErr)
		assert.True(t, f.unlocked)
	})
}
