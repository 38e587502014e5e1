package memory

import (
	"context"
	"sync"

	"github.com/aescanero/kvitems/pkg/ports"
)

var (
	_ ports.ItemStore = (*InMemoryItemStore)(nil)
	_ ports.ItemCache = (*InMemoryItemStore)(nil)
)

// InMemoryItemStore implements ItemStore using an in-memory map
// This is for testing purposes only
type InMemoryItemStore struct {
	items map[int64]string
	err   error
	mu    sync.RWMutex
}

// NewInMemoryItemStore creates a new in-memory item store
func NewInMemoryItemStore() *InMemoryItemStore {
	return &InMemoryItemStore{
		items: make(map[int64]string),
	}
}

// FailWith makes every subsequent operation return err wrapped in a
// StoreError. Pass nil to clear.
func (s *InMemoryItemStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err
}

// Upsert stores value under id
func (s *InMemoryItemStore) Upsert(ctx context.Context, id int64, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return &ports.StoreError{Op: "upsert", Err: s.err}
	}

	s.items[id] = value
	return nil
}

// Get returns the value stored under id
func (s *InMemoryItemStore) Get(ctx context.Context, id int64) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return "", false, &ports.StoreError{Op: "get", Err: s.err}
	}

	value, ok := s.items[id]
	return value, ok, nil
}

// Delete removes the item stored under id
func (s *InMemoryItemStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return &ports.StoreError{Op: "delete", Err: s.err}
	}

	delete(s.items, id)
	return nil
}

// Len returns the number of stored items
func (s *InMemoryItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Close is a no-op for in-memory storage
func (s *InMemoryItemStore) Close() error {
	return nil
}
