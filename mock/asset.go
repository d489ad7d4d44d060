package mock

import (
	"context"
	"io"

	"github.com/DJCoolVR/soundboard"
)

// Compile-time interface verification.
var (
	_ soundboard.AssetClient  = (*AssetClient)(nil)
	_ soundboard.MediaStore   = (*MediaStore)(nil)
	_ soundboard.AssetFetcher = (*AssetFetcher)(nil)
)

// AssetClient is a mock implementation of soundboard.AssetClient.
type AssetClient struct {
	DownloadFn func(ctx context.Context, assetPath string) (io.ReadCloser, error)
}

func (c *AssetClient) Download(ctx context.Context, assetPath string) (io.ReadCloser, error) {
	return c.DownloadFn(ctx, assetPath)
}

// MediaStore is a mock implementation of soundboard.MediaStore.
type MediaStore struct {
	PathFn   func(assetPath string) (string, error)
	ExistsFn func(assetPath string) bool
	WriteFn  func(ctx context.Context, assetPath string, r io.Reader) error
}

func (s *MediaStore) Path(assetPath string) (string, error) {
	return s.PathFn(assetPath)
}

func (s *MediaStore) Exists(assetPath string) bool {
	return s.ExistsFn(assetPath)
}

func (s *MediaStore) Write(ctx context.Context, assetPath string, r io.Reader) error {
	return s.WriteFn(ctx, assetPath, r)
}

// AssetFetcher is a mock implementation of soundboard.AssetFetcher.
type AssetFetcher struct {
	EnsureDownloadedFn func(ctx context.Context, sounds []soundboard.Sound) (*soundboard.DownloadResult, error)
}

func (f *AssetFetcher) EnsureDownloaded(ctx context.Context, sounds []soundboard.Sound) (*soundboard.DownloadResult, error) {
	return f.EnsureDownloadedFn(ctx, sounds)
}
