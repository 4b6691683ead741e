package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryCache is an in-memory stand-in for the Redis-backed plan cache. It
// round-trips values through JSON to keep the same serialization semantics.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	healthy bool
}

// NewMemoryCache creates an empty, healthy cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte), healthy: true}
}

// SetHealthy toggles whether reads and writes take effect
func (c *MemoryCache) SetHealthy(healthy bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.healthy = healthy
}

// Get reads a cached value into dest, reporting whether it was a hit
func (c *MemoryCache) Get(ctx context.Context, key string, dest interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.healthy {
		return false
	}
	data, ok := c.entries[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		delete(c.entries, key)
		return false
	}
	return true
}

// Put stores a value under the key; the TTL is recorded but never enforced
func (c *MemoryCache) Put(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.healthy {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.entries[key] = data
}

// Invalidate removes the given keys
func (c *MemoryCache) Invalidate(ctx context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
}

// HealthCheck reports the toggled health state
func (c *MemoryCache) HealthCheck(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.healthy
}

// Contains reports whether a key currently holds an entry
func (c *MemoryCache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
