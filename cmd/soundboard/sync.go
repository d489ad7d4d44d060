package main

import (
	"fmt"
	"io"
	"time"

	"github.com/DJCoolVR/soundboard"
	"github.com/DJCoolVR/soundboard/fs"
)

// Run executes the sync command.
//
// The catalog is loaded before any page is fetched so a malformed catalog
// aborts the run without network traffic. Downloads start only after the
// merged catalog has been saved.
func (c *SyncCmd) Run(deps *Dependencies) (err error) {
	defer func() {
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", soundboard.ErrorMessage(err))
		}
	}()

	startedAt := time.Now()

	locked, err := deps.Lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock catalog: %w", err)
	}
	if !locked {
		return soundboard.Errorf(soundboard.ECONFLICT, "another sync is running for %s", c.Catalog)
	}
	defer func() { _ = deps.Lock.Unlock() }()

	catalog, err := deps.Catalog.Load(deps.Ctx)
	if err != nil {
		return err
	}

	sounds, err := deps.Listing.FetchListing(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "[SCRAPE] Collected %d sounds\n", len(sounds))

	merged := soundboard.Merge(catalog.Sounds, sounds)
	catalog.Sounds = merged.Sounds
	if err := deps.Catalog.Save(deps.Ctx, catalog); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "[MERGE] %d sounds: %d kept, %d added, %d stale\n",
		len(merged.Sounds), merged.Kept, merged.Added, merged.Stale)

	downloads := &soundboard.DownloadResult{}
	if !c.SkipDownload && deps.Assets != nil {
		downloads, err = deps.Assets.EnsureDownloaded(deps.Ctx, merged.Sounds)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "[DL] %d downloaded, %d skipped, %d failed\n",
			downloads.Downloaded, downloads.Skipped, downloads.Failed)
	}

	if c.NoHistory || deps.Runs == nil {
		return nil
	}

	hash, err := fs.ListingHash(merged.Sounds)
	if err != nil {
		return err
	}

	run := &soundboard.Run{
		StartedAt:   startedAt,
		FinishedAt:  time.Now(),
		Scraped:     len(sounds),
		Total:       len(merged.Sounds),
		Kept:        merged.Kept,
		Added:       merged.Added,
		Stale:       merged.Stale,
		Downloaded:  downloads.Downloaded,
		Skipped:     downloads.Skipped,
		Failed:      downloads.Failed,
		ListingHash: hash,
	}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// printProgress reports each listing page on w.
func printProgress(w io.Writer) soundboard.PageProgressFunc {
	return func(p soundboard.PageProgress) {
		switch {
		case p.Err != nil:
			fmt.Fprintf(w, "[SCRAPE] Page %d failed, stopping: %v\n", p.Page, p.Err)
		case p.Items == 0:
			fmt.Fprintf(w, "[SCRAPE] Page %d is empty, stopping\n", p.Page)
		default:
			fmt.Fprintf(w, "[SCRAPE] Page %d: %d new, %d total\n", p.Page, p.Added, p.Total)
		}
	}
}
