package odds

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// Cache holds the most recently fetched board for a fixed time-to-live.
type Cache struct {
	mu        sync.RWMutex
	value     []Event
	fetchedAt time.Time
	ttl       time.Duration
	clock     Clock
}

// NewCache creates an empty cache. A nil clock uses the wall clock.
func NewCache(ttl time.Duration, clock Clock) *Cache {
	if clock == nil {
		clock = time.Now
	}
	return &Cache{ttl: ttl, clock: clock}
}

// Get returns the cached board while it is younger than the TTL.
func (c *Cache) Get() ([]Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.value == nil || c.clock().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.value, true
}

// Set replaces the cached board and restarts the TTL.
func (c *Cache) Set(events []Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if events == nil {
		events = []Event{}
	}
	c.value = events
	c.fetchedAt = c.clock()
}

// Invalidate drops the cached board.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
	c.fetchedAt = time.Time{}
}

// FetchedAt returns when the board was last stored.
func (c *Cache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}
