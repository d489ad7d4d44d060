// Package soundboard keeps a local catalog of sound clips in sync with a
// public listing site. It scrapes the paginated listing, reconciles it with
// the previously saved catalog, and downloads any audio not yet on disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, goquery/, sqlite/).
package soundboard
