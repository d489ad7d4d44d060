package soundboard

import "context"

// Sound is a single entry of the sound listing.
// MP3 is the relative asset path and the unique key of the entry.
type Sound struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	MP3   string  `json:"mp3"`
}

// Validate returns an error if the sound contains invalid fields.
func (s *Sound) Validate() error {
	if s.MP3 == "" {
		return Errorf(EINVALID, "sound mp3 path required")
	}
	return nil
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Catalog is the locally persisted set of known sounds.
// Prefix is opaque text that precedes the listing in the catalog file and
// is preserved byte for byte.
type Catalog struct {
	Prefix string
	Sounds []Sound
}

// CatalogStore persists the catalog.
type CatalogStore interface {
	// Load reads the catalog.
	// Returns EFORMAT if the file lacks the splitter or the listing is malformed.
	// Returns ENOTFOUND if the catalog does not exist.
	Load(ctx context.Context) (*Catalog, error)

	// Save overwrites the catalog with the given prefix and listing.
	Save(ctx context.Context, catalog *Catalog) error
}

// Locker guards a resource against concurrent runs.
type Locker interface {
	// TryLock attempts to take the lock without blocking.
	// It reports whether the lock was acquired.
	TryLock() (bool, error)
	Unlock() error
}
