// Package cache holds computed simulation results in memory for a bounded
// time. The cache is a pure performance layer: a miss is always a valid
// answer and the store remains the source of truth.
package cache

import (
	"sync"
	"time"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
)

type entry struct {
	result   domain.SimulationResult
	storedAt time.Time
}

// SimulationCache maps simulation identity to its computed result with a
// single process-wide TTL. Entries expire lazily: a Get past the TTL is a
// miss whether or not anything swept the map. Safe for concurrent use; the
// lock is held only around map access, never across store calls.
type SimulationCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[int64]entry
	now     func() time.Time
}

// New creates a cache whose entries live for ttl after each Set. A
// non-positive ttl disables caching entirely: every Get is a miss.
func New(ttl time.Duration) *SimulationCache {
	return &SimulationCache{
		ttl:     ttl,
		entries: make(map[int64]entry),
		now:     time.Now,
	}
}

// Set stores or overwrites the result for id. Overwriting restarts the
// entry's TTL clock.
func (c *SimulationCache) Set(id int64, result domain.SimulationResult) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[id] = entry{result: result, storedAt: c.now()}
	c.mu.Unlock()
}

// Get returns the cached result for id. The second return is false on a
// miss, including entries whose age exceeds the TTL.
func (c *SimulationCache) Get(id int64) (domain.SimulationResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return domain.SimulationResult{}, false
	}

	if c.now().Sub(e.storedAt) >= c.ttl {
		// Expired: drop it so the map does not accumulate dead entries.
		c.mu.Lock()
		if cur, still := c.entries[id]; still && cur.storedAt.Equal(e.storedAt) {
			delete(c.entries, id)
		}
		c.mu.Unlock()
		return domain.SimulationResult{}, false
	}

	return e.result, true
}

// Remove invalidates the entry for id, if any.
func (c *SimulationCache) Remove(id int64) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

// Len reports how many entries the map currently holds, expired or not.
func (c *SimulationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
