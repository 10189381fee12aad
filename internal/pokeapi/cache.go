package pokeapi

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedResponse wraps a raw response body with version metadata for cache invalidation
type cachedResponse struct {
	Version  string
	Body     []byte
	CachedAt time.Time
}

// responseCache is an in-memory LRU of raw provider responses keyed by URL,
// with time-based expiration and version-based invalidation.
type responseCache struct {
	lru *expirable.LRU[string, *cachedResponse]
}

func newResponseCache(size int, ttl time.Duration) *responseCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &responseCache{
		lru: expirable.NewLRU[string, *cachedResponse](size, nil, ttl),
	}
}

// Get returns the body if present, unexpired and written under the current schema version.
func (c *responseCache) Get(key string) ([]byte, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Body, true
}

// Set stores a body under the current schema version.
func (c *responseCache) Set(key string, body []byte) {
	c.lru.Add(key, &cachedResponse{
		Version:  CacheSchemaVersion,
		Body:     body,
		CachedAt: time.Now(),
	})
}

// Len reports the number of live entries
func (c *responseCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries from the cache.
func (c *responseCache) Clear() {
	c.lru.Purge()
}
