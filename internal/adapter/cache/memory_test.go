package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
)

var testKey = domain.SearchKey{Origin: "LGA", Destination: "SFO", DepartureDate: "2025-12-15"}

func testEntry(ids ...string) domain.CachedSearch {
	offers := make([]domain.FlightOffer, 0, len(ids))
	for _, id := range ids {
		offers = append(offers, domain.FlightOffer{
			ID:               id,
			Price:            300,
			DepartureHour:    9,
			CabinsPerSegment: []domain.Cabin{domain.CabinEconomy},
		})
	}
	return domain.CachedSearch{Key: testKey, Offers: offers}
}

func TestMemoryCache_SetGet(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemoryCache(time.Minute, clock)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, testEntry("a", "b")))

	got, ok, err := c.Get(ctx, domain.SearchKey{Origin: " lga", Destination: "sfo ", DepartureDate: "2025-12-15"})
	require.NoError(t, err)
	require.True(t, ok, "lookup is normalized")
	assert.Len(t, got.Offers, 2)
	assert.Equal(t, clock.Now(), got.StoredAt)
}

func TestMemoryCache_Expiry(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemoryCache(time.Minute, clock)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testEntry("a")))

	clock.Advance(59 * time.Second)
	_, ok, _ := c.Get(ctx, testKey)
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok, _ = c.Get(ctx, testKey)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry is evicted on read")
}

func TestMemoryCache_SetReplaces(t *testing.T) {
	c := NewMemoryCache(time.Minute, nil)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testEntry("a", "b", "c")))
	require.NoError(t, c.Set(ctx, testEntry("z")))

	got, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got.Offers, 1)
	assert.Equal(t, "z", got.Offers[0].ID)
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	c := NewMemoryCache(time.Minute, nil)
	ctx := context.Background()

	entry := testEntry("a")
	require.NoError(t, c.Set(ctx, entry))
	entry.Offers[0].ID = "mutated-input"

	got, _, _ := c.Get(ctx, testKey)
	got.Offers[0].ID = "mutated-output"

	again, _, _ := c.Get(ctx, testKey)
	assert.Equal(t, "a", again.Offers[0].ID)
}

func TestMemoryCache_ReturnsDeepCopies(t *testing.T) {
	c := NewMemoryCache(time.Minute, nil)
	ctx := context.Background()

	entry := testEntry("a")
	entry.Offers[0].CabinsPerSegment = []domain.Cabin{domain.CabinEconomy, domain.CabinBusiness}
	entry.Offers[0].LayoverHours = []float64{1.5}
	entry.Offers[0].LayoverLocations = []string{"ORD"}
	entry.Offers[0].CarrierCodes = []string{"UA"}
	require.NoError(t, c.Set(ctx, entry))

	entry.Offers[0].CabinsPerSegment[0] = domain.CabinFirst
	entry.Offers[0].LayoverHours[0] = 9

	got, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	require.True(t, ok)
	got.Offers[0].LayoverLocations[0] = "XXX"
	got.Offers[0].CarrierCodes[0] = "ZZ"

	again, _, _ := c.Get(ctx, testKey)
	offer := again.Offers[0]
	assert.Equal(t, []domain.Cabin{domain.CabinEconomy, domain.CabinBusiness}, offer.CabinsPerSegment)
	assert.Equal(t, []float64{1.5}, offer.LayoverHours)
	assert.Equal(t, []string{"ORD"}, offer.LayoverLocations)
	assert.Equal(t, []string{"UA"}, offer.CarrierCodes)
}

func TestCloneEntry_KeepsNilSlices(t *testing.T) {
	got := cloneEntry(testEntry("a"))
	assert.Nil(t, got.Offers[0].LayoverHours)
	assert.Nil(t, got.Offers[0].CarrierCodes)
}

func TestMemoryCache_Purge(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemoryCache(time.Minute, clock)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testEntry("a")))
	clock.Advance(30 * time.Second)

	other := testEntry("b")
	other.Key = domain.SearchKey{Origin: "JFK", Destination: "LAX", DepartureDate: "2025-12-16"}
	require.NoError(t, c.Set(ctx, other))

	clock.Advance(45 * time.Second)
	assert.Equal(t, 1, c.Purge())
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	c := NewMemoryCache(time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Set(ctx, testEntry("a")), context.Canceled)
	_, _, err := c.Get(ctx, testKey)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryCache_Close(t *testing.T) {
	c := NewMemoryCache(0, nil)
	require.NoError(t, c.Set(context.Background(), testEntry("a")))
	require.NoError(t, c.Close())
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	c := NewMemoryCache(time.Minute, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			e := testEntry(fmt.Sprintf("offer-%d", i))
			_ = c.Set(ctx, e)
		}(i)
		go func() {
			defer wg.Done()
			_, _, _ = c.Get(ctx, testKey)
		}()
	}
	wg.Wait()

	_, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testEntry("a")))
	_, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}

func TestMemoryCache_RunJanitor(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC))
	c := NewMemoryCache(time.Minute, clock)
	require.NoError(t, c.Set(context.Background(), testEntry("1")))

	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
