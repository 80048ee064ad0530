package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=domain

// CachedSearch is a snapshot of the offers last received for a search.
type CachedSearch struct {
	Key      SearchKey     `json:"key"`
	Offers   []FlightOffer `json:"offers"`
	StoredAt time.Time     `json:"storedAt"`
}

// OfferCache stores the most recent offers per search so they can be
// re-ranked under new preferences without fetching again.
type OfferCache interface {
	// Get returns the cached search, or ok=false on a miss or expiry.
	Get(ctx context.Context, key SearchKey) (CachedSearch, bool, error)

	// Set replaces the cached offers for the search.
	Set(ctx context.Context, entry CachedSearch) error

	// Close releases any underlying resources.
	Close() error
}
