// Package download fetches the audio assets of a listing onto local disk.
package download

import (
	"context"
	"sync/atomic"

	"github.com/DJCoolVR/soundboard"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of downloads in flight.
const DefaultConcurrency = 8

var _ soundboard.AssetFetcher = (*Downloader)(nil)

// Downloader implements soundboard.AssetFetcher.
// Sounds whose file already exists are skipped. Any other failure is
// counted and otherwise ignored; nothing is retried.
type Downloader struct {
	Client      soundboard.AssetClient
	Media       soundboard.MediaStore
	Concurrency int
}

// NewDownloader creates a Downloader with DefaultConcurrency.
func NewDownloader(client soundboard.AssetClient, media soundboard.MediaStore) *Downloader {
	return &Downloader{
		Client:      client,
		Media:       media,
		Concurrency: DefaultConcurrency,
	}
}

// EnsureDownloaded downloads every sound that has no local file yet.
// Downloads complete in no particular order. The only error returned is the
// context error when ctx is canceled.
func (d *Downloader) EnsureDownloaded(ctx context.Context, sounds []soundboard.Sound) (*soundboard.DownloadResult, error) {
	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var downloaded, skipped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, sound := range sounds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			switch d.ensure(gctx, sound.MP3) {
			case outcomeDownloaded:
				downloaded.Add(1)
			case outcomeSkipped:
				skipped.Add(1)
			default:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := &soundboard.DownloadResult{
		Downloaded: int(downloaded.Load()),
		Skipped:    int(skipped.Load()),
		Failed:     int(failed.Load()),
	}
	return result, ctx.Err()
}

type outcome int

const (
	outcomeFailed outcome = iota
	outcomeDownloaded
	outcomeSkipped
)

func (d *Downloader) ensure(ctx context.Context, assetPath string) outcome {
	if d.Media.Exists(assetPath) {
		return outcomeSkipped
	}
	if _, err := d.Media.Path(assetPath); err != nil {
		return outcomeFailed
	}

	body, err := d.Client.Download(ctx, assetPath)
	if err != nil {
		return outcomeFailed
	}
	defer body.Close()

	if err := d.Media.Write(ctx, assetPath, body); err != nil {
		return outcomeFailed
	}
	return outcomeDownloaded
}
