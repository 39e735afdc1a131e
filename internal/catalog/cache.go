package catalog

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/utils"
)

// cachedItemEntry wraps an item with version metadata for cache invalidation
type cachedItemEntry struct {
	Version  string
	Item     domain.CatalogItem
	CachedAt time.Time
}

// itemCache is an in-memory LRU of catalog lookups keyed by folded item name.
// The importer purges it after every batch so shop reads never outlive an import.
// Each purge bumps the generation; a Set carrying an older generation is dropped.
type itemCache struct {
	mu  sync.Mutex
	gen uint64
	lru *expirable.LRU[string, *cachedItemEntry]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &itemCache{
		lru: expirable.NewLRU[string, *cachedItemEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached item; stale schema versions are dropped
func (c *itemCache) Get(itemName string) (*domain.CatalogItem, bool) {
	key := utils.NormalizeItemName(itemName)
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	item := entry.Item
	return &item, true
}

// Generation returns the current purge generation
func (c *itemCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Set stores an item under its folded name if no purge happened since gen was read
func (c *itemCache) Set(item domain.CatalogItem, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.lru.Add(utils.NormalizeItemName(item.ItemName), &cachedItemEntry{
		Version:  CacheSchemaVersion,
		Item:     item,
		CachedAt: time.Now(),
	})
	return true
}

// Clear removes all entries from the cache.
func (c *itemCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.lru.Purge()
}

// Len reports the number of cached items
func (c *itemCache) Len() int {
	return c.lru.Len()
}
