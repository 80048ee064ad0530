package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		hour  int
	}{
		{name: "UTC", value: "2025-12-15T08:00:00Z", hour: 8},
		{name: "with offset", value: "2025-12-15T08:00:00+07:00", hour: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.value)
			assert.Equal(t, tt.hour, result.Hour())
		})
	}
}

func TestPtr(t *testing.T) {
	p := Ptr(42.5)
	require.NotNil(t, p)
	assert.Equal(t, 42.5, *p)

	s := Ptr("FIRST")
	assert.Equal(t, "FIRST", *s)
}

func TestMustOffer(t *testing.T) {
	offer := MustOffer(t, "X", 250,
		Leg(t, "UA", "business", "LGA", "DEN", "2025-12-15T06:30:00Z", "2025-12-15T09:00:00Z"),
		Leg(t, "UA", "ECONOMY", "DEN", "SFO", "2025-12-15T10:00:00Z", "2025-12-15T12:00:00Z"),
	)

	assert.Equal(t, "X", offer.ID)
	assert.Equal(t, 6, offer.DepartureHour)
	assert.Equal(t, 1, offer.LayoverCount)
	assert.Equal(t, 5.5, offer.TotalDurationHours)
	assert.Equal(t, []domain.Cabin{domain.CabinBusiness, domain.CabinEconomy}, offer.CabinsPerSegment)
	assert.Equal(t, []string{"DEN"}, offer.LayoverLocations)
	assert.Equal(t, []float64{1}, offer.LayoverHours)
}

func TestScenarioOffers(t *testing.T) {
	offers := ScenarioOffers(t)
	require.Len(t, offers, 2)

	a, b := offers[0], offers[1]
	assert.Equal(t, 8, a.DepartureHour)
	assert.Equal(t, 5.0, a.TotalDurationHours)
	assert.Equal(t, 0, a.LayoverCount)

	assert.Equal(t, 14, b.DepartureHour)
	assert.Equal(t, 7.0, b.TotalDurationHours)
	assert.Equal(t, 1, b.LayoverCount)
	assert.Equal(t, []float64{2}, b.LayoverHours)

	assert.NoError(t, ScenarioSearch().Validate())
}

func TestLoadTestJSON(t *testing.T) {
	data := LoadTestJSON(t, "amadeus_flight_offers.json")
	assert.Contains(t, string(data), `"data"`)
}
