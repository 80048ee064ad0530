// Package mock provides configurable test doubles for integration tests
// that need delays, injected errors or call counting.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
)

// Cache is a configurable domain.OfferCache. It stores entries in memory
// unless an error is configured for the operation.
type Cache struct {
	mu       sync.Mutex
	entries  map[domain.SearchKey]domain.CachedSearch
	getErr   error
	setErr   error
	delay    time.Duration
	getCalls int
	setCalls int
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[domain.SearchKey]domain.CachedSearch)}
}

// WithGetError makes every Get fail with err.
func (c *Cache) WithGetError(err error) *Cache {
	c.getErr = err
	return c
}

// WithSetError makes every Set fail with err.
func (c *Cache) WithSetError(err error) *Cache {
	c.setErr = err
	return c
}

// WithDelay makes every call wait d, or until the context is done.
func (c *Cache) WithDelay(d time.Duration) *Cache {
	c.delay = d
	return c
}

// Get implements domain.OfferCache.Get.
func (c *Cache) Get(ctx context.Context, key domain.SearchKey) (domain.CachedSearch, bool, error) {
	c.mu.Lock()
	c.getCalls++
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return domain.CachedSearch{}, false, err
	}
	if c.getErr != nil {
		return domain.CachedSearch{}, false, c.getErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key.Normalize()]
	return entry, ok, nil
}

// Set implements domain.OfferCache.Set.
func (c *Cache) Set(ctx context.Context, entry domain.CachedSearch) error {
	c.mu.Lock()
	c.setCalls++
	c.mu.Unlock()

	if err := c.wait(ctx); err != nil {
		return err
	}
	if c.setErr != nil {
		return c.setErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[entry.Key.Normalize()] = entry
	return nil
}

// Close implements domain.OfferCache.Close.
func (c *Cache) Close() error { return nil }

// GetCalls returns the number of Get calls.
func (c *Cache) GetCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCalls
}

// SetCalls returns the number of Set calls.
func (c *Cache) SetCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setCalls
}

func (c *Cache) wait(ctx context.Context) error {
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.delay):
		}
	}
	return ctx.Err()
}

// Ensure Cache implements domain.OfferCache at compile time.
var _ domain.OfferCache = (*Cache)(nil)

// SampleOffers returns count valid offers on one route. Offer i departs at
// 06:00+i (mod 24), costs 200+10*i and alternates between direct and one stop.
func SampleOffers(count int) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, count)
	base := time.Date(2025, 12, 15, 6, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		dep := base.Add(time.Duration(i%18) * time.Hour)
		layovers := i % 2
		cabins := make([]domain.Cabin, layovers+1)
		for j := range cabins {
			cabins[j] = domain.CabinEconomy
		}
		duration := 5.0 + float64(layovers)*2

		offers[i] = domain.FlightOffer{
			ID:                 fmt.Sprintf("offer-%d", i+1),
			Price:              200 + float64(i*10),
			Currency:           "USD",
			DepartureHour:      dep.Hour(),
			TotalDurationHours: duration,
			LayoverCount:       layovers,
			CabinsPerSegment:   cabins,
			Carrier:            "United Airlines",
			CarrierCodes:       []string{"UA"},
			CabinLabel:         string(domain.CabinEconomy),
			Departure:          dep,
			Arrival:            dep.Add(time.Duration(duration * float64(time.Hour))),
		}
	}
	return offers
}
