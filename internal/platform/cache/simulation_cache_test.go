package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/loansim/loan_simulation_api/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(ttl time.Duration) (*SimulationCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	c := New(ttl)
	c.now = clock.Now
	return c, clock
}

func result(id int64) domain.SimulationResult {
	return domain.SimulationResult{
		Simulation: domain.Simulation{
			ID:         id,
			Amount:     decimal.NewFromInt(10000),
			TermMonths: 24,
		},
		ProductName: "Produto 1",
	}
}

func TestCache_SetThenGet(t *testing.T) {
	c, _ := newTestCache(10 * time.Minute)

	c.Set(7, result(7))
	got, ok := c.Get(7)

	require.True(t, ok)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Produto 1", got.ProductName)
}

func TestCache_GetUnknownIDIsMiss(t *testing.T) {
	c, _ := newTestCache(10 * time.Minute)

	_, ok := c.Get(99)
	assert.False(t, ok)
}

func TestCache_EntryExpiresLazily(t *testing.T) {
	c, clock := newTestCache(10 * time.Minute)

	c.Set(7, result(7))
	clock.Advance(10*time.Minute + time.Second)

	_, ok := c.Get(7)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry must be dropped on read")
}

func TestCache_SetResetsTTLClock(t *testing.T) {
	c, clock := newTestCache(10 * time.Minute)

	c.Set(7, result(7))
	clock.Advance(9 * time.Minute)
	c.Set(7, result(7)) // overwrite restarts the clock
	clock.Advance(9 * time.Minute)

	_, ok := c.Get(7)
	assert.True(t, ok)
}

func TestCache_RemoveIsMissRegardlessOfTTL(t *testing.T) {
	c, _ := newTestCache(time.Hour)

	c.Set(7, result(7))
	c.Remove(7)

	_, ok := c.Get(7)
	assert.False(t, ok)
}

func TestCache_ZeroTTLNeverHits(t *testing.T) {
	c, _ := newTestCache(0)

	c.Set(7, result(7))

	_, ok := c.Get(7)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				id := int64(j % 10)
				c.Set(id, result(id))
				c.Get(id)
				if j%3 == 0 {
					c.Remove(id)
				}
			}
		}(i)
	}
	wg.Wait()
}
