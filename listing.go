package soundboard

import "context"

// ListingPage holds the sounds extracted from one page of the listing.
type ListingPage struct {
	// Items is the number of listing entries found on the page,
	// including entries that could not be turned into a Sound.
	Items int

	Sounds []Sound
}

// ListingParser extracts sounds from a listing page.
type ListingParser interface {
	ParseListing(html string) (*ListingPage, error)
}

// ListingFetcher walks the remote listing and returns every sound found.
// A failing or empty page ends the walk; the sounds collected so far are
// returned without error.
type ListingFetcher interface {
	FetchListing(ctx context.Context) ([]Sound, error)
}

// PageProgress reports progress while walking the listing.
type PageProgress struct {
	Page  int
	Items int
	Added int
	Total int
	Err   error
}

// PageProgressFunc is called after each listing page is processed.
type PageProgressFunc func(PageProgress)
