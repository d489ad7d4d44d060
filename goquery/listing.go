// Package goquery extracts sounds from listing pages using CSS selectors.
package goquery

import (
	"strings"

	"github.com/DJCoolVR/soundboard"
	"github.com/PuerkitoBio/goquery"
)

// Selectors used against the listing markup.
const (
	ItemSelector   = "#instants_container .instant"
	ButtonSelector = "button[onclick^='play']"
	NameSelector   = ".instant-link"
	CircleSelector = ".circle"
)

var _ soundboard.ListingParser = (*ListingParser)(nil)

// ListingParser implements soundboard.ListingParser for the instants listing.
type ListingParser struct{}

// NewListingParser creates a new ListingParser.
func NewListingParser() *ListingParser {
	return &ListingParser{}
}

// ParseListing returns the sounds found on a listing page in document order.
// Entries without a play button, or whose button does not carry a non-empty
// quoted asset path, are counted in Items but produce no Sound.
func (p *ListingParser) ParseListing(html string) (*soundboard.ListingPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, soundboard.Errorf(soundboard.EINVALID, "failed to parse HTML: %v", err)
	}

	items := doc.Find(ItemSelector)
	page := &soundboard.ListingPage{Items: items.Length()}

	items.Each(func(_ int, item *goquery.Selection) {
		onclick, ok := item.Find(ButtonSelector).First().Attr("onclick")
		if !ok {
			return
		}

		mp3, ok := AssetPath(onclick)
		if !ok || mp3 == "" {
			return
		}

		page.Sounds = append(page.Sounds, soundboard.Sound{
			Name:  itemName(item),
			Color: itemColor(item),
			MP3:   mp3,
		})
	})

	return page, nil
}

// AssetPath returns the first single-quoted argument of an onclick handler,
// e.g. play('/media/sounds/x.mp3', ...) yields /media/sounds/x.mp3.
func AssetPath(onclick string) (string, bool) {
	parts := strings.Split(onclick, "'")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

// StyleColor returns the value after the last colon of a style attribute.
// It assumes a single-property style such as "background-color:#FF0000".
func StyleColor(style string) string {
	parts := strings.Split(style, ":")
	return strings.TrimSpace(parts[len(parts)-1])
}

func itemName(item *goquery.Selection) *string {
	sel := item.Find(NameSelector).First()
	if sel.Length() == 0 {
		return nil
	}
	return soundboard.StringPtr(strings.TrimSpace(sel.Text()))
}

func itemColor(item *goquery.Selection) *string {
	style, ok := item.Find(CircleSelector).First().Attr("style")
	if !ok {
		return nil
	}
	return soundboard.StringPtr(StyleColor(style))
}
