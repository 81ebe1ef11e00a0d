package loot

import "sync/atomic"

// Store owns the process-wide current catalog as a swappable reference.
// Replace is a single pointer swap, so a query that starts after a reload
// completes sees only the new snapshot, never a mix of old and new rows.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates an empty store. Current returns nil until the first
// Replace.
func NewStore() *Store {
	return &Store{}
}

// Current returns the installed snapshot, or nil when no load has succeeded
// yet.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Replace atomically installs a new snapshot.
func (s *Store) Replace(c *Catalog) {
	s.current.Store(c)
}
