package tiered

import (
	"context"
	"sync"

	"github.com/aescanero/kvitems/pkg/ports"
	"go.uber.org/zap"
)

// lockStripes bounds the per-id locks; ids sharing a stripe serialize.
const lockStripes = 64

// Compile-time interface check.
var _ ports.ItemStore = (*ItemStore)(nil)

// ItemStore wraps a durable store with a cache tier. Writes go to the durable
// store first and then to the cache (write-through); reads check the cache
// first and fall back to the durable store on a miss.
//
// The durable store is the source of truth: cache failures are logged and
// absorbed, durable failures are returned unchanged.
//
// A write holds its id's lock across both tiers, and so does a backfill, so
// the cache never ends up holding an older value than the durable store.
type ItemStore struct {
	cache   ports.ItemCache
	durable ports.ItemStore
	logger  *zap.Logger

	locks [lockStripes]sync.Mutex
}

// NewItemStore creates a tiered store
func NewItemStore(cache ports.ItemCache, durable ports.ItemStore, logger *zap.Logger) *ItemStore {
	return &ItemStore{
		cache:   cache,
		durable: durable,
		logger:  logger,
	}
}

// Upsert writes through to the durable store and then the cache
func (s *ItemStore) Upsert(ctx context.Context, id int64, value string) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if err := s.durable.Upsert(ctx, id, value); err != nil {
		return err
	}

	if err := s.cache.Upsert(ctx, id, value); err != nil {
		s.logger.Warn("failed to update item cache, evicting",
			zap.Int64("id", id),
			zap.Error(err))

		// A stale cached value would shadow the write until it expires.
		if err := s.cache.Delete(ctx, id); err != nil {
			s.logger.Error("failed to evict stale cached item",
				zap.Int64("id", id),
				zap.Error(err))
		}
	}

	return nil
}

// Get reads from the cache first and backfills it from the durable store
func (s *ItemStore) Get(ctx context.Context, id int64) (string, bool, error) {
	value, found, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn("item cache read failed, using durable store",
			zap.Int64("id", id),
			zap.Error(err))
	} else if found {
		return value, true, nil
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	value, found, err = s.durable.Get(ctx, id)
	if err != nil || !found {
		return "", false, err
	}

	if err := s.cache.Upsert(ctx, id, value); err != nil {
		s.logger.Warn("failed to backfill item cache",
			zap.Int64("id", id),
			zap.Error(err))
	}

	return value, true, nil
}

func (s *ItemStore) lockFor(id int64) *sync.Mutex {
	stripe := id % lockStripes
	if stripe < 0 {
		stripe = -stripe
	}
	return &s.locks[stripe]
}

// Close closes the durable store. The cache client is owned by the caller.
func (s *ItemStore) Close() error {
	return s.durable.Close()
}
