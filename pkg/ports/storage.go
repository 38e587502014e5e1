// Package ports declares the interfaces that adapters implement and the
// application layer depends on.
package ports

import (
	"context"
	"fmt"
)

// ItemStore persists items keyed by integer id
type ItemStore interface {
	// Upsert inserts the item or replaces the value of an existing item with
	// the same id.
	Upsert(ctx context.Context, id int64, value string) error

	// Get returns the stored value. found is false when no item exists for id;
	// absence is never reported as an error.
	Get(ctx context.Context, id int64) (value string, found bool, err error)

	// Close releases any resources held by the store.
	Close() error
}

// ItemCache is a non-authoritative item tier placed in front of an ItemStore
type ItemCache interface {
	Get(ctx context.Context, id int64) (value string, found bool, err error)
	Upsert(ctx context.Context, id int64, value string) error
	Delete(ctx context.Context, id int64) error
}

// StoreError reports an engine-level storage failure
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
