package geocode

import (
	"sync"
	"time"
)

type cacheEntry struct {
	coords    Coords
	createdAt time.Time
}

// Cache is an in-process TTL map keyed by the literal address string.
// There is no eviction beyond TTL expiry; a background sweep reclaims
// expired entries.
type Cache struct {
	mu     sync.RWMutex
	store  map[string]cacheEntry
	ttl    time.Duration
	stopCh chan struct{}
}

func NewCache(ttl time.Duration) *Cache {
	c := &Cache{
		store:  make(map[string]cacheEntry),
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}
	go c.sweep()
	return c
}

func (c *Cache) Get(address string) (Coords, bool) {
	c.mu.RLock()
	entry, exists := c.store[address]
	c.mu.RUnlock()

	if !exists {
		return Coords{}, false
	}
	if time.Since(entry.createdAt) > c.ttl {
		c.mu.Lock()
		delete(c.store, address)
		c.mu.Unlock()
		return Coords{}, false
	}
	return entry.coords, true
}

func (c *Cache) Set(address string, coords Coords) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[address] = cacheEntry{coords: coords, createdAt: time.Now()}
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			for address, entry := range c.store {
				if time.Since(entry.createdAt) > c.ttl {
					delete(c.store, address)
				}
			}
			c.mu.Unlock()
		case <-c.stopCh:
			return
		}
	}
}

// Stop terminates the sweep goroutine.
func (c *Cache) Stop() {
	close(c.stopCh)
}
