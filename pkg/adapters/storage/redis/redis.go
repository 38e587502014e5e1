package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aescanero/kvitems/pkg/ports"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ ports.ItemCache = (*ItemCache)(nil)

// ItemCache implements ItemCache using Redis
type ItemCache struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

// NewItemCache creates a new Redis item cache. Entries expire after ttl.
func NewItemCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ItemCache {
	return &ItemCache{
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

// Upsert caches value under id
func (c *ItemCache) Upsert(ctx context.Context, id int64, value string) error {
	if err := c.client.Set(ctx, getItemKey(id), value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache item: %w", err)
	}

	c.logger.Debug("item cached", zap.Int64("id", id))
	return nil
}

// Get returns the cached value for id
func (c *ItemCache) Get(ctx context.Context, id int64) (string, bool, error) {
	value, err := c.client.Get(ctx, getItemKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get cached item: %w", err)
	}

	return value, true, nil
}

// Delete evicts id from the cache
func (c *ItemCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, getItemKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to evict cached item: %w", err)
	}

	return nil
}

// getItemKey returns the Redis key for an item
func getItemKey(id int64) string {
	return fmt.Sprintf("kvitems:item:%d", id)
}
