package slog

import (
	"context"
	"io"
	"log/slog"
	"path"

	"github.com/DJCoolVR/soundboard"
)

// Ensure LoggingMediaStore implements soundboard.MediaStore.
var _ soundboard.MediaStore = (*LoggingMediaStore)(nil)

// LoggingMediaStore wraps a MediaStore and logs every stored download.
// Failed writes are logged at debug level only.
type LoggingMediaStore struct {
	next   soundboard.MediaStore
	logger *slog.Logger
}

// NewLoggingMediaStore creates a new LoggingMediaStore.
func NewLoggingMediaStore(next soundboard.MediaStore, logger *slog.Logger) *LoggingMediaStore {
	return &LoggingMediaStore{next: next, logger: logger}
}

// Path delegates to the wrapped store.
func (s *LoggingMediaStore) Path(assetPath string) (string, error) {
	return s.next.Path(assetPath)
}

// Exists delegates to the wrapped store.
func (s *LoggingMediaStore) Exists(assetPath string) bool {
	return s.next.Exists(assetPath)
}

// Write delegates to the wrapped store and logs the result.
func (s *LoggingMediaStore) Write(ctx context.Context, assetPath string, r io.Reader) error {
	err := s.next.Write(ctx, assetPath, r)
	if err != nil {
		s.logger.Debug("download skipped", "mp3", assetPath, "err", err)
		return err
	}
	s.logger.Info("downloaded", "file", path.Base(assetPath))
	return nil
}
