package mock

import (
	"context"

	"github.com/DJCoolVR/soundboard"
)

// Compile-time interface verification.
var (
	_ soundboard.CatalogStore = (*CatalogStore)(nil)
	_ soundboard.Locker       = (*Locker)(nil)
)

// CatalogStore is a mock implementation of soundboard.CatalogStore.
type CatalogStore struct {
	LoadFn func(ctx context.Context) (*soundboard.Catalog, error)
	SaveFn func(ctx context.Context, catalog *soundboard.Catalog) error
}

func (s *CatalogStore) Load(ctx context.Context) (*soundboard.Catalog, error) {
	return s.LoadFn(ctx)
}

func (s *CatalogStore) Save(ctx context.Context, catalog *soundboard.Catalog) error {
	return s.SaveFn(ctx, catalog)
}

// Locker is a mock implementation of soundboard.Locker.
type Locker struct {
	TryLockFn func() (bool, error)
	UnlockFn  func() error
}

func (l *Locker) TryLock() (bool, error) {
	return l.TryLockFn()
}

func (l *Locker) Unlock() error {
	return l.UnlockFn()
}
