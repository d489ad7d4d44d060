package mock

import (
	"context"

	"github.com/DJCoolVR/soundboard"
)

// Compile-time interface verification.
var (
	_ soundboard.ListingParser  = (*ListingParser)(nil)
	_ soundboard.ListingFetcher = (*ListingFetcher)(nil)
)

// ListingParser is a mock implementation of soundboard.ListingParser.
type ListingParser struct {
	ParseListingFn func(html string) (*soundboard.ListingPage, error)
}

func (p *ListingParser) ParseListing(html string) (*soundboard.ListingPage, error) {
	return p.ParseListingFn(html)
}

// ListingFetcher is a mock implementation of soundboard.ListingFetcher.
type ListingFetcher struct {
	FetchListingFn func(ctx context.Context) ([]soundboard.Sound, error)
}

func (f *ListingFetcher) FetchListing(ctx context.Context) ([]soundboard.Sound, error) {
	return f.FetchListingFn(ctx)
}
