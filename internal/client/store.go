package client

import (
	"context"
	"sync"
)

// Store caches one entity list fetched from the API. A failed refresh
// keeps the previously loaded items so callers can keep rendering
// stale data alongside the error.
type Store[T any] struct {
	mu      sync.Mutex
	fetch   func(context.Context) ([]T, error)
	items   []T
	loaded  bool
	loading bool
	err     error
}

// NewStore creates a store backed by the given fetch function.
func NewStore[T any](fetch func(context.Context) ([]T, error)) *Store[T] {
	return &Store[T]{fetch: fetch}
}

// Load fetches the list once; later calls return the cached items
// until Refresh is called.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	if s.loaded {
		items := s.items
		s.mu.Unlock()
		return items, nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh refetches the list. Mutating operations call this so the
// cache reflects the server state, last write wins.
func (s *Store[T]) Refresh(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = err
	if err != nil {
		return s.items, err
	}
	s.items = items
	s.loaded = true
	return items, nil
}

// Items returns the currently cached list.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// Loading reports whether a refresh is in flight.
func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error from the last refresh, if any.
func (s *Store[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
