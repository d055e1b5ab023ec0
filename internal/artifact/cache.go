// Package artifact keeps recently converted outputs close at hand so a
// conversion followed by a download does not re-read the database.
package artifact

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"mdmind/internal/storage"
)

// Cache is a read-through LRU in front of an ArtifactStore. It
// implements storage.ArtifactStore so callers can treat it as the
// store itself.
type Cache struct {
	store storage.ArtifactStore
	cache *lru.Cache[string, *storage.ArtifactRecord]
}

// NewCache creates a cache holding up to size records.
func NewCache(store storage.ArtifactStore, size int) (*Cache, error) {
	c, err := lru.New[string, *storage.ArtifactRecord](size)
	if err != nil {
		return nil, err
	}
	return &Cache{store: store, cache: c}, nil
}

// Save persists the artifact and primes the cache with it.
func (c *Cache) Save(ctx context.Context, record *storage.ArtifactRecord) error {
	if err := c.store.Save(ctx, record); err != nil {
		return err
	}
	c.cache.Add(record.ID, record)
	return nil
}

// Get returns the cached record when present, falling back to the
// store and caching the result.
func (c *Cache) Get(ctx context.Context, id string) (*storage.ArtifactRecord, error) {
	if record, ok := c.cache.Get(id); ok {
		return record, nil
	}
	record, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Add(record.ID, record)
	return record, nil
}

// Latest always consults the store; recency ordering lives there.
func (c *Cache) Latest(ctx context.Context) (*storage.ArtifactRecord, error) {
	record, err := c.store.Latest(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Add(record.ID, record)
	return record, nil
}

// Len reports the number of cached records.
func (c *Cache) Len() int {
	return c.cache.Len()
}
