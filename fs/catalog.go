// Package fs provides file-based storage for the sound catalog and the
// downloaded media.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/DJCoolVR/soundboard"
	"github.com/cespare/xxhash/v2"
)

// Splitter separates the opaque prefix from the JSON listing in a catalog file.
const Splitter = "// SPLITTER ---------------"

// Ensure CatalogFile implements soundboard.CatalogStore at compile time.
var _ soundboard.CatalogStore = (*CatalogFile)(nil)

// CatalogFile stores the catalog as a single text file: a prefix, the
// splitter line, then the listing as indented JSON.
//
// Save overwrites the file in place. A crash mid-write leaves a truncated
// catalog; callers serialize runs with NewLock.
type CatalogFile struct {
	path string
}

// NewCatalogFile creates a CatalogFile at path.
func NewCatalogFile(path string) *CatalogFile {
	return &CatalogFile{path: path}
}

// Path returns the catalog file path.
func (f *CatalogFile) Path() string {
	return f.path
}

// Load reads and splits the catalog file.
func (f *CatalogFile) Load(ctx context.Context) (*soundboard.Catalog, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, soundboard.Errorf(soundboard.ENOTFOUND, "catalog %s not found", f.path)
	} else if err != nil {
		return nil, err
	}

	prefix, listing, ok := strings.Cut(string(data), Splitter)
	if !ok {
		return nil, soundboard.Errorf(soundboard.EFORMAT, "catalog %s has no splitter line %q", f.path, Splitter)
	}

	sounds, err := DecodeListing([]byte(listing))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", f.path, err)
	}

	return &soundboard.Catalog{Prefix: prefix, Sounds: sounds}, nil
}

// Save writes the prefix verbatim, the splitter, and the encoded listing.
func (f *CatalogFile) Save(ctx context.Context, catalog *soundboard.Catalog) error {
	listing, err := EncodeListing(catalog.Sounds)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.Grow(len(catalog.Prefix) + len(Splitter) + 1 + len(listing))
	buf.WriteString(catalog.Prefix)
	buf.WriteString(Splitter)
	buf.WriteByte('\n')
	buf.Write(listing)

	return os.WriteFile(f.path, buf.Bytes(), 0644)
}

// DecodeListing parses the JSON listing segment of a catalog.
// Surrounding whitespace is ignored. Returns EFORMAT if the segment is not
// an array of sound objects with non-empty mp3 paths.
func DecodeListing(data []byte) ([]soundboard.Sound, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, soundboard.Errorf(soundboard.EFORMAT, "listing is not a JSON array")
	}

	var sounds []soundboard.Sound
	if err := json.Unmarshal(data, &sounds); err != nil {
		return nil, soundboard.Errorf(soundboard.EFORMAT, "malformed listing: %v", err)
	}

	for i := range sounds {
		if err := sounds[i].Validate(); err != nil {
			return nil, soundboard.Errorf(soundboard.EFORMAT, "listing entry %d: %s", i, soundboard.ErrorMessage(err))
		}
	}

	return sounds, nil
}

// EncodeListing renders sounds as a JSON array indented with four spaces,
// with no trailing newline. The output matches Python's
// json.dumps(indent=4): HTML characters stay literal and non-ASCII runes
// become lowercase \uXXXX escapes.
func EncodeListing(sounds []soundboard.Sound) ([]byte, error) {
	if sounds == nil {
		sounds = []soundboard.Sound{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(sounds); err != nil {
		return nil, err
	}

	return escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// escapeNonASCII rewrites every rune above 0x7F in encoded JSON as a \u
// escape. Non-ASCII bytes only occur inside string literals, so the result
// decodes to the same values.
func escapeNonASCII(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))
	for len(data) > 0 {
		if data[0] < utf8.RuneSelf {
			out.WriteByte(data[0])
			data = data[1:]
			continue
		}
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&out, "\\u%04x\\u%04x", hi, lo)
			continue
		}
		fmt.Fprintf(&out, "\\u%04x", r)
	}
	return out.Bytes()
}

// ListingHash returns the xxhash of the encoded listing.
func ListingHash(sounds []soundboard.Sound) (string, error) {
	listing, err := EncodeListing(sounds)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", xxhash.Sum64(listing)), nil
}
