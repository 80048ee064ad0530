package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return parsed
}

func TestNewFlightOffer_Direct(t *testing.T) {
	segments := []Segment{
		{
			Carrier:          "UA",
			Cabin:            "ECONOMY",
			DepartureAirport: "LGA",
			ArrivalAirport:   "SFO",
			DepartureTime:    mustTime(t, "2025-12-15T08:30:00-05:00"),
			ArrivalTime:      mustTime(t, "2025-12-15T11:45:00-08:00"),
		},
	}

	offer, err := NewFlightOffer("1", 400, "USD", segments)
	require.NoError(t, err)

	assert.Equal(t, "1", offer.ID)
	assert.Equal(t, 400.0, offer.Price)
	assert.Equal(t, 8, offer.DepartureHour, "departure hour is local to the departure offset")
	assert.InDelta(t, 6.25, offer.TotalDurationHours, 1e-9)
	assert.Equal(t, 0, offer.LayoverCount)
	assert.Equal(t, []Cabin{CabinEconomy}, offer.CabinsPerSegment)
	assert.Equal(t, "United Airlines", offer.Carrier)
	assert.Equal(t, "ECONOMY", offer.CabinLabel)
	assert.Empty(t, offer.LayoverLocations)
	assert.Empty(t, offer.LayoverHours)
	require.NoError(t, offer.Validate())
}

func TestNewFlightOffer_WithLayover(t *testing.T) {
	segments := []Segment{
		{
			Carrier:          "AA",
			Cabin:            "economy",
			DepartureAirport: "LGA",
			ArrivalAirport:   "ORD",
			DepartureTime:    mustTime(t, "2025-12-15T14:00:00Z"),
			ArrivalTime:      mustTime(t, "2025-12-15T16:00:00Z"),
		},
		{
			Carrier:          "BA",
			Cabin:            "BUSINESS",
			DepartureAirport: "ORD",
			ArrivalAirport:   "SFO",
			DepartureTime:    mustTime(t, "2025-12-15T17:20:00Z"),
			ArrivalTime:      mustTime(t, "2025-12-15T21:00:00Z"),
		},
	}

	offer, err := NewFlightOffer("2", 300, "USD", segments)
	require.NoError(t, err)

	assert.Equal(t, 14, offer.DepartureHour)
	assert.InDelta(t, 7.0, offer.TotalDurationHours, 1e-9)
	assert.Equal(t, 1, offer.LayoverCount)
	assert.Equal(t, []Cabin{CabinEconomy, CabinBusiness}, offer.CabinsPerSegment)
	assert.Equal(t, "American Airlines, British Airways", offer.Carrier)
	assert.Equal(t, []string{"AA", "BA"}, offer.CarrierCodes)
	assert.Equal(t, "ECONOMY, BUSINESS", offer.CabinLabel)
	assert.Equal(t, []string{"ORD"}, offer.LayoverLocations)
	assert.Equal(t, []float64{1.33}, offer.LayoverHours)
}

func TestNewFlightOffer_Errors(t *testing.T) {
	dep := mustTime(t, "2025-12-15T08:00:00Z")
	arr := mustTime(t, "2025-12-15T10:00:00Z")

	tests := []struct {
		name     string
		price    float64
		segments []Segment
		wantErr  error
	}{
		{
			name:     "no segments",
			price:    100,
			segments: nil,
			wantErr:  ErrInvalidOffer,
		},
		{
			name:     "negative price",
			price:    -1,
			segments: []Segment{{Cabin: "ECONOMY", DepartureTime: dep, ArrivalTime: arr}},
			wantErr:  ErrInvalidOffer,
		},
		{
			name:     "infinite price",
			price:    math.Inf(1),
			segments: []Segment{{Cabin: "ECONOMY", DepartureTime: dep, ArrivalTime: arr}},
			wantErr:  ErrInvalidOffer,
		},
		{
			name:     "NaN price",
			price:    math.NaN(),
			segments: []Segment{{Cabin: "ECONOMY", DepartureTime: dep, ArrivalTime: arr}},
			wantErr:  ErrInvalidOffer,
		},
		{
			name:     "unknown cabin",
			price:    100,
			segments: []Segment{{Cabin: "ULTRA", DepartureTime: dep, ArrivalTime: arr}},
			wantErr:  ErrInvalidCabinLabel,
		},
		{
			name:     "arrives before departure",
			price:    100,
			segments: []Segment{{Cabin: "ECONOMY", DepartureTime: arr, ArrivalTime: dep}},
			wantErr:  ErrInvalidOffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFlightOffer("x", tt.price, "USD", tt.segments)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestFlightOffer_Validate(t *testing.T) {
	valid := func() FlightOffer {
		return FlightOffer{
			Price:              100,
			DepartureHour:      9,
			TotalDurationHours: 3,
			LayoverCount:       1,
			CabinsPerSegment:   []Cabin{CabinEconomy, CabinEconomy},
		}
	}

	tests := []struct {
		name    string
		modify  func(*FlightOffer)
		wantErr error
	}{
		{name: "valid offer", modify: func(o *FlightOffer) {}},
		{name: "no cabins", modify: func(o *FlightOffer) { o.CabinsPerSegment = nil; o.LayoverCount = 0 }, wantErr: ErrInvalidOffer},
		{name: "layover mismatch", modify: func(o *FlightOffer) { o.LayoverCount = 3 }, wantErr: ErrInvalidOffer},
		{name: "hour out of range", modify: func(o *FlightOffer) { o.DepartureHour = 24 }, wantErr: ErrInvalidOffer},
		{name: "negative duration", modify: func(o *FlightOffer) { o.TotalDurationHours = -1 }, wantErr: ErrInvalidOffer},
		{name: "negative price", modify: func(o *FlightOffer) { o.Price = -5 }, wantErr: ErrInvalidOffer},
		{name: "infinite price", modify: func(o *FlightOffer) { o.Price = math.Inf(1) }, wantErr: ErrInvalidOffer},
		{name: "NaN price", modify: func(o *FlightOffer) { o.Price = math.NaN() }, wantErr: ErrInvalidOffer},
		{name: "infinite duration", modify: func(o *FlightOffer) { o.TotalDurationHours = math.Inf(1) }, wantErr: ErrInvalidOffer},
		{name: "NaN duration", modify: func(o *FlightOffer) { o.TotalDurationHours = math.NaN() }, wantErr: ErrInvalidOffer},
		{name: "bad cabin", modify: func(o *FlightOffer) { o.CabinsPerSegment[1] = "ULTRA" }, wantErr: ErrInvalidCabinLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid()
			tt.modify(&o)
			err := o.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.33, Round2(4.0/3.0))
	assert.Equal(t, 50.0, Round2(50))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, 0.13, Round2(0.125))
}
