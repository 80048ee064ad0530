// Package cache provides the OfferCache implementations used to keep the
// offers of recent searches available for re-ranking.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
)

// DefaultTTL is used when a cache is created with a non-positive TTL.
const DefaultTTL = 15 * time.Minute

// MemoryCache is an in-process OfferCache with per-entry expiry.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[domain.SearchKey]domain.CachedSearch
	ttl     time.Duration
	clock   timeutil.Clock
}

// NewMemoryCache creates a MemoryCache. A nil clock uses the system time.
func NewMemoryCache(ttl time.Duration, clock timeutil.Clock) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &MemoryCache{
		entries: make(map[domain.SearchKey]domain.CachedSearch),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns a copy of the cached entry if it has not expired.
func (c *MemoryCache) Get(ctx context.Context, key domain.SearchKey) (domain.CachedSearch, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.CachedSearch{}, false, err
	}

	key = key.Normalize()

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return domain.CachedSearch{}, false, nil
	}

	if c.expired(entry) {
		c.mu.Lock()
		// re-check: a concurrent Set may have refreshed it
		if current, still := c.entries[key]; still && c.expired(current) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return domain.CachedSearch{}, false, nil
	}

	return cloneEntry(entry), true, nil
}

// Set stores entry, stamping StoredAt from the cache clock.
func (c *MemoryCache) Set(ctx context.Context, entry domain.CachedSearch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry = cloneEntry(entry)
	entry.Key = entry.Key.Normalize()
	entry.StoredAt = c.clock.Now()

	c.mu.Lock()
	c.entries[entry.Key] = entry
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops every expired entry and returns how many were removed.
func (c *MemoryCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// RunJanitor purges expired entries every interval until ctx is done.
func (c *MemoryCache) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Purge()
		}
	}
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[domain.SearchKey]domain.CachedSearch)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) expired(e domain.CachedSearch) bool {
	return !c.clock.Now().Before(e.StoredAt.Add(c.ttl))
}

// cloneEntry deep-copies the offers so callers cannot mutate cached state.
func cloneEntry(e domain.CachedSearch) domain.CachedSearch {
	offers := make([]domain.FlightOffer, len(e.Offers))
	for i, o := range e.Offers {
		o.CabinsPerSegment = cloneSlice(o.CabinsPerSegment)
		o.CarrierCodes = cloneSlice(o.CarrierCodes)
		o.LayoverLocations = cloneSlice(o.LayoverLocations)
		o.LayoverHours = cloneSlice(o.LayoverHours)
		offers[i] = o
	}
	e.Offers = offers
	return e
}

// cloneSlice keeps nil as nil.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

var _ domain.OfferCache = (*MemoryCache)(nil)
