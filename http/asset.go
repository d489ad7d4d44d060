package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/DJCoolVR/soundboard"
)

// DefaultAssetHost is prepended to asset paths.
const DefaultAssetHost = "https://www.myinstants.com"

var _ soundboard.AssetClient = (*AssetClient)(nil)

// AssetClient downloads audio assets with plain GET requests.
// No timeout is set by default; downloads run as long as the transport allows.
type AssetClient struct {
	client *http.Client
	host   string
}

// NewAssetClient creates an AssetClient for host. An empty host selects
// DefaultAssetHost. A nil client selects http.DefaultClient.
func NewAssetClient(client *http.Client, host string) *AssetClient {
	if client == nil {
		client = http.DefaultClient
	}
	if host == "" {
		host = DefaultAssetHost
	}
	return &AssetClient{
		client: client,
		host:   strings.TrimSuffix(host, "/"),
	}
}

// URL returns the remote URL of assetPath.
func (c *AssetClient) URL(assetPath string) string {
	return c.host + assetPath
}

// Download opens the asset body. Any non-200 response is reported as ENOTFOUND.
func (c *AssetClient) Download(ctx context.Context, assetPath string) (io.ReadCloser, error) {
	url := c.URL(assetPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, soundboard.Errorf(soundboard.EINVALID, "invalid asset URL %q: %v", url, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, soundboard.Errorf(soundboard.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}
