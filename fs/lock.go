package fs

import (
	"github.com/DJCoolVR/soundboard"
	"github.com/gofrs/flock"
)

// NewLock returns a file lock guarding the catalog at catalogPath.
// The lock file lives next to the catalog as <catalog>.lock.
func NewLock(catalogPath string) soundboard.Locker {
	return flock.New(catalogPath + ".lock")
}
