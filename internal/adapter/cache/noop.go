package cache

import (
	"context"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
)

// NoOpCache never stores anything. Re-ranking is unavailable with it.
type NoOpCache struct{}

// NewNoOpCache creates a NoOpCache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (NoOpCache) Get(context.Context, domain.SearchKey) (domain.CachedSearch, bool, error) {
	return domain.CachedSearch{}, false, nil
}

func (NoOpCache) Set(context.Context, domain.CachedSearch) error { return nil }

func (NoOpCache) Close() error { return nil }

var _ domain.OfferCache = (*NoOpCache)(nil)
