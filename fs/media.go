package fs

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/DJCoolVR/soundboard"
)

// DefaultMediaDir is where downloaded sounds are kept.
var DefaultMediaDir = filepath.Join("media", "sounds")

var _ soundboard.MediaStore = (*MediaDir)(nil)

// MediaDir stores one file per sound, named after the basename of its asset path.
type MediaDir struct {
	dir string
}

// NewMediaDir creates a MediaDir rooted at dir.
func NewMediaDir(dir string) *MediaDir {
	return &MediaDir{dir: dir}
}

// Path returns dir/<basename of assetPath>.
func (m *MediaDir) Path(assetPath string) (string, error) {
	name := path.Base(assetPath)
	switch name {
	case "", ".", "..", "/":
		return "", soundboard.Errorf(soundboard.EINVALID, "no file name in asset path %q", assetPath)
	}
	return filepath.Join(m.dir, name), nil
}

// Exists reports whether the asset file is present.
func (m *MediaDir) Exists(assetPath string) bool {
	p, err := m.Path(assetPath)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// Write copies r into the asset file. Content is written to a ".part" file
// first and renamed into place, so an interrupted download never leaves a
// file that Exists would report.
func (m *MediaDir) Write(ctx context.Context, assetPath string, r io.Reader) (err error) {
	p, err := m.Path(assetPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return err
	}

	tmp := p + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := io.Copy(f, ctxReader{ctx: ctx, r: r}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, p)
}

// ctxReader stops a copy once the context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
