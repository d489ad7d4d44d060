package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/DJCoolVR/soundboard"
)

// Ensure LoggingListingFetcher implements soundboard.ListingFetcher.
var _ soundboard.ListingFetcher = (*LoggingListingFetcher)(nil)

// LoggingListingFetcher wraps a ListingFetcher with logging.
type LoggingListingFetcher struct {
	next   soundboard.ListingFetcher
	logger *slog.Logger
}

// NewLoggingListingFetcher creates a new LoggingListingFetcher.
func NewLoggingListingFetcher(next soundboard.ListingFetcher, logger *slog.Logger) *LoggingListingFetcher {
	return &LoggingListingFetcher{next: next, logger: logger}
}

// FetchListing delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingListingFetcher) FetchListing(ctx context.Context) (sounds []soundboard.Sound, err error) {
	defer func(begin time.Time) {
		f.logger.Info("listing fetch",
			"count", len(sounds),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchListing(ctx)
}
