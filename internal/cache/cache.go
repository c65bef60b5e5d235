// Package cache provides a concurrency-safe in-memory key-value store with
// per-entry TTL, lazy eviction on read, and a periodic background sweep.
package cache

import (
	"sync"
	"time"
)

// DefaultSweepInterval is how often the background sweep removes expired
// entries when no interval is configured.
const DefaultSweepInterval = 5 * time.Minute

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is an in-memory TTL cache. There is no entry count cap; expiry plus
// the sweep are the only bounds on growth. The zero value is not usable; use
// New.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]

	sweepInterval time.Duration
	done          chan struct{}
	closeOnce     sync.Once
}

// New creates a Cache and starts its background sweep. sweepInterval <= 0
// falls back to DefaultSweepInterval. The owner must call Close to stop the
// sweep.
func New[V any](sweepInterval time.Duration) *Cache[V] {
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	c := &Cache[V]{
		entries:       make(map[string]entry[V]),
		sweepInterval: sweepInterval,
		done:          make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// Get returns the value for key. An entry whose expiry has passed is treated
// as absent and removed as a side effect. The in-memory implementation never
// returns an error; the error is part of the contract for networked backends.
func (c *Cache[V]) Get(key string) (V, bool, error) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return zero, false, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return zero, false, nil
	}
	return e.value, true, nil
}

// Set stores value under key, unconditionally overwriting any existing entry,
// with expiry = now + ttl.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes the entry for key, if any.
func (c *Cache[V]) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Clear removes all entries.
func (c *Cache[V]) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry[V])
	return nil
}

// Len returns the number of entries currently held, including any expired
// entries the sweep has not visited yet.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Close stops the background sweep. The cache remains usable afterwards, but
// expired entries are then only removed lazily on Get.
func (c *Cache[V]) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// sweepLoop periodically removes expired entries to bound memory growth. It
// takes the same lock as the request-path operations.
func (c *Cache[V]) sweepLoop() {
	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache[V]) removeExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
