// Package scrape walks the paginated sound listing and collects its sounds.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/DJCoolVR/soundboard"
	"golang.org/x/time/rate"
)

// Defaults for the public listing.
const (
	DefaultURLTemplate = "https://www.myinstants.com/en/index/us/?page=%d"
	DefaultStartPage   = 1
	DefaultEndPage     = 100
	DefaultDelay       = 300 * time.Millisecond
)

var _ soundboard.ListingFetcher = (*Scraper)(nil)

// Scraper implements soundboard.ListingFetcher by fetching listing pages one
// at a time, in order, with a fixed delay between requests.
type Scraper struct {
	Fetcher soundboard.Fetcher
	Parser  soundboard.ListingParser

	// URLTemplate is formatted with the page number.
	URLTemplate string
	StartPage   int
	EndPage     int

	// Delay is the minimum spacing between page requests.
	// Zero or negative disables pacing.
	Delay time.Duration

	// Progress, if set, is called after every page.
	Progress soundboard.PageProgressFunc
}

// NewScraper returns a Scraper configured for the public listing.
func NewScraper(fetcher soundboard.Fetcher, parser soundboard.ListingParser) *Scraper {
	return &Scraper{
		Fetcher:     fetcher,
		Parser:      parser,
		URLTemplate: DefaultURLTemplate,
		StartPage:   DefaultStartPage,
		EndPage:     DefaultEndPage,
		Delay:       DefaultDelay,
	}
}

// FetchListing walks pages StartPage..EndPage and returns the sounds found,
// deduplicated by asset path with the first occurrence winning.
//
// The walk ends at the first page that fails to load or parse, or that has
// no listing entries. Such a page is not an error: the sounds collected so
// far are returned. Only context cancellation is reported as an error.
func (s *Scraper) FetchListing(ctx context.Context) ([]soundboard.Sound, error) {
	limit := rate.Inf
	if s.Delay > 0 {
		limit = rate.Every(s.Delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	seen := make(map[string]struct{})
	var sounds []soundboard.Sound

	for page := s.StartPage; page <= s.EndPage; page++ {
		if err := limiter.Wait(ctx); err != nil {
			return sounds, err
		}

		listing, err := s.fetchPage(ctx, page)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return sounds, ctxErr
			}
			s.report(soundboard.PageProgress{Page: page, Total: len(sounds), Err: err})
			break
		}

		if listing.Items == 0 {
			s.report(soundboard.PageProgress{Page: page, Total: len(sounds)})
			break
		}

		var added int
		for _, sound := range listing.Sounds {
			if _, ok := seen[sound.MP3]; ok {
				continue
			}
			seen[sound.MP3] = struct{}{}
			sounds = append(sounds, sound)
			added++
		}

		s.report(soundboard.PageProgress{
			Page:  page,
			Items: listing.Items,
			Added: added,
			Total: len(sounds),
		})
	}

	return sounds, nil
}

func (s *Scraper) fetchPage(ctx context.Context, page int) (*soundboard.ListingPage, error) {
	url := fmt.Sprintf(s.URLTemplate, page)

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}

	listing, err := s.Parser.ParseListing(html)
	if err != nil {
		return nil, fmt.Errorf("parse page %d: %w", page, err)
	}
	return listing, nil
}

func (s *Scraper) report(p soundboard.PageProgress) {
	if s.Progress != nil {
		s.Progress(p)
	}
}
