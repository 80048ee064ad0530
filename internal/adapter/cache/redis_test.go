package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
)

func TestRedisKey(t *testing.T) {
	k1 := redisKey(testKey)
	k2 := redisKey(domain.SearchKey{Origin: "lga", Destination: " sfo", DepartureDate: "2025-12-15"})
	k3 := redisKey(domain.SearchKey{Origin: "LGA", Destination: "SFO", DepartureDate: "2025-12-16"})

	assert.True(t, strings.HasPrefix(k1, keyPrefix))
	assert.Len(t, k1, len(keyPrefix)+64)
	assert.Equal(t, k1, k2, "keys are normalized before hashing")
	assert.NotEqual(t, k1, k3)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	cfg := DefaultRedisConfig()
	cfg.Addr = "127.0.0.1:1"
	cfg.DialTimeout = 200 * time.Millisecond

	c, err := NewRedisCache(context.Background(), cfg)
	assert.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "redis ping")
}

func TestNewRedisCacheWithClient_Defaults(t *testing.T) {
	c := NewRedisCacheWithClient(nil, 0, nil)
	assert.Equal(t, DefaultTTL, c.ttl)
	assert.NotNil(t, c.clock)
}

func unreachableCache(t *testing.T) *RedisCache {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCacheWithClient(client, time.Minute, nil)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCache_GetConnectionError(t *testing.T) {
	c := unreachableCache(t)

	_, ok, err := c.Get(context.Background(), testKey)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "redis get")
}

func TestRedisCache_CancelledContext(t *testing.T) {
	c := unreachableCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Set(ctx, testEntry("a"))
	assert.ErrorIs(t, err, context.Canceled)

	_, ok, err := c.Get(ctx, testKey)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

// newMiniredisCache returns a cache backed by an in-process Redis server.
func newMiniredisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis, *timeutil.MockClock) {
	t.Helper()
	mr := miniredis.RunT(t)
	clock := timeutil.NewMockClock(time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC))
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisCacheWithClient(client, ttl, clock)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr, clock
}

func TestRedisCache_Miss(t *testing.T) {
	c, _, _ := newMiniredisCache(t, time.Minute)

	entry, ok, err := c.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, entry.Offers)
}

func TestRedisCache_SetGetRoundTrip(t *testing.T) {
	c, _, clock := newMiniredisCache(t, time.Minute)
	ctx := context.Background()

	dep, err := time.Parse(time.RFC3339, "2025-12-15T07:00:00-05:00")
	require.NoError(t, err)
	offer, err := domain.NewFlightOffer("A", 412.3, "USD", []domain.Segment{
		{Carrier: "AA", Cabin: "ECONOMY", DepartureAirport: "LGA", ArrivalAirport: "ORD",
			DepartureTime: dep, ArrivalTime: dep.Add(2 * time.Hour)},
		{Carrier: "UA", Cabin: "BUSINESS", DepartureAirport: "ORD", ArrivalAirport: "SFO",
			DepartureTime: dep.Add(3 * time.Hour), ArrivalTime: dep.Add(7 * time.Hour)},
	})
	require.NoError(t, err)

	// Lower-case key is normalized on write and read.
	require.NoError(t, c.Set(ctx, domain.CachedSearch{
		Key:    domain.SearchKey{Origin: "lga", Destination: "sfo", DepartureDate: "2025-12-15"},
		Offers: []domain.FlightOffer{offer},
	}))

	entry, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, testKey, entry.Key)
	assert.True(t, clock.Now().Equal(entry.StoredAt))
	require.Len(t, entry.Offers, 1)

	got := entry.Offers[0]
	assert.Equal(t, "A", got.ID)
	assert.Equal(t, 412.3, got.Price)
	assert.Equal(t, 7, got.DepartureHour)
	assert.Equal(t, 7.0, got.TotalDurationHours)
	assert.Equal(t, 1, got.LayoverCount)
	assert.Equal(t, []domain.Cabin{domain.CabinEconomy, domain.CabinBusiness}, got.CabinsPerSegment)
	assert.Equal(t, []string{"ORD"}, got.LayoverLocations)
	assert.Equal(t, []float64{1}, got.LayoverHours)
	assert.Equal(t, "2025-12-15T07:00:00-05:00", got.Departure.Format(time.RFC3339))
	assert.NoError(t, got.Validate())
}

func TestRedisCache_AppliesTTL(t *testing.T) {
	c, mr, _ := newMiniredisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testEntry("a")))
	assert.Equal(t, time.Minute, mr.TTL(redisKey(testKey)))

	mr.FastForward(time.Minute + time.Second)

	_, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_SetReplaces(t *testing.T) {
	c, _, _ := newMiniredisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testEntry("a", "b")))
	require.NoError(t, c.Set(ctx, testEntry("c")))

	entry, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, entry.Offers, 1)
	assert.Equal(t, "c", entry.Offers[0].ID)
}

func TestRedisCache_CorruptValue(t *testing.T) {
	c, mr, _ := newMiniredisCache(t, time.Minute)
	require.NoError(t, mr.Set(redisKey(testKey), "{not json"))

	_, ok, err := c.Get(context.Background(), testKey)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "decode cached search")
}

func TestNewRedisCache_Connects(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := DefaultRedisConfig()
	cfg.Addr = mr.Addr()

	c, err := NewRedisCache(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	assert.Equal(t, DefaultTTL, c.ttl)
}
