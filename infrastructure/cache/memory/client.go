// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides a process-local cache with TTL support and janitor cleanup

package memory

import (
	"context"
	"time"

	"lakeshow-api/core/interfaces"
	"lakeshow-api/pkg/config"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a cache whose entries default to the configured
// expiration and are purged every CleanupInterval seconds.
func NewMemoryCache(cfg config.MemoryConfig) *MemoryCache {
	expiration := time.Duration(cfg.DefaultExpiration) * time.Second
	if cfg.DefaultExpiration <= 0 {
		expiration = gocache.NoExpiration
	}

	cleanup := time.Duration(cfg.CleanupInterval) * time.Second
	if cfg.CleanupInterval <= 0 {
		cleanup = 10 * time.Minute
	}

	return &MemoryCache{items: gocache.New(expiration, cleanup)}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Get(key)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL never expires.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.items.Set(key, valueCopy, ttl)

	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.items.Delete(key)
	return nil
}

// Len reports the number of entries, including expired ones not yet purged.
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}
