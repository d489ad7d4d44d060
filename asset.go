package soundboard

import (
	"context"
	"io"
)

// AssetClient retrieves audio assets from the remote site.
type AssetClient interface {
	// Download opens the asset at assetPath. The caller must close the body.
	// Returns ENOTFOUND if the server does not answer with success.
	Download(ctx context.Context, assetPath string) (io.ReadCloser, error)
}

// MediaStore keeps downloaded assets on local disk.
// Presence of a file is the only signal that an asset was downloaded.
type MediaStore interface {
	// Path returns the local file path for assetPath.
	// Returns EINVALID if no file name can be derived.
	Path(assetPath string) (string, error)

	// Exists reports whether the asset is already stored.
	Exists(assetPath string) bool

	// Write stores the asset content read from r.
	Write(ctx context.Context, assetPath string, r io.Reader) error
}

// DownloadResult summarizes a download pass.
type DownloadResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// AssetFetcher makes sure every sound has a local copy of its asset.
// Failed downloads are counted, never returned as errors.
type AssetFetcher interface {
	EnsureDownloaded(ctx context.Context, sounds []Sound) (*DownloadResult, error)
}
