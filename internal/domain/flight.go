// Package domain contains the core entities and rules for flight offer ranking.
// These types are provider-agnostic; upstream payloads are normalized into them
// before anything is scored.
package domain

import (
	"fmt"
	"math"
	"time"
)

// Segment is one direct leg of an itinerary as received from the fetch layer.
type Segment struct {
	// Carrier is the IATA carrier code (e.g., "UA")
	Carrier string `json:"carrier"`

	// FlightNumber is the marketing flight number, if known
	FlightNumber string `json:"flightNumber,omitempty"`

	// Cabin is the raw cabin label for this leg (e.g., "ECONOMY")
	Cabin string `json:"cabin"`

	// DepartureAirport is the IATA code of the departure airport
	DepartureAirport string `json:"departureAirport"`

	// ArrivalAirport is the IATA code of the arrival airport
	ArrivalAirport string `json:"arrivalAirport"`

	// DepartureTime is the local departure time, offset included
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the local arrival time, offset included
	ArrivalTime time.Time `json:"arrivalTime"`
}

// FlightOffer is one priced itinerary, normalized for scoring.
//
// Only Price, DepartureHour, TotalDurationHours, LayoverCount and
// CabinsPerSegment are read by the scoring engine. The remaining fields are
// carried through to presentation untouched.
type FlightOffer struct {
	// ID identifies the offer within a search
	ID string `json:"id"`

	// Price is the total price in Currency
	Price float64 `json:"price"`

	// Currency is the ISO 4217 code shared by the whole batch
	Currency string `json:"currency,omitempty"`

	// DepartureHour is the local hour [0,23] of the first departure
	DepartureHour int `json:"departureHour"`

	// TotalDurationHours is the elapsed time from first departure to last arrival
	TotalDurationHours float64 `json:"totalDurationHours"`

	// LayoverCount is the number of intermediate stops (segments - 1)
	LayoverCount int `json:"layoverCount"`

	// CabinsPerSegment holds one cabin per leg, in flight order
	CabinsPerSegment []Cabin `json:"cabinsPerSegment"`

	// Display-only fields.
	Carrier          string    `json:"carrier,omitempty"`
	CarrierCodes     []string  `json:"carrierCodes,omitempty"`
	CabinLabel       string    `json:"cabinLabel,omitempty"`
	Departure        time.Time `json:"departure"`
	Arrival          time.Time `json:"arrival"`
	LayoverLocations []string  `json:"layoverLocations,omitempty"`
	LayoverHours     []float64 `json:"layoverHours,omitempty"`
}

// NewFlightOffer builds a FlightOffer from its priced segments, deriving the
// scoring fields and the display fields in one pass.
func NewFlightOffer(id string, price float64, currency string, segments []Segment) (FlightOffer, error) {
	if len(segments) == 0 {
		return FlightOffer{}, fmt.Errorf("%w: offer %q has no segments", ErrInvalidOffer, id)
	}
	if !isFinite(price) {
		return FlightOffer{}, fmt.Errorf("%w: offer %q has a non-finite price", ErrInvalidOffer, id)
	}
	if price < 0 {
		return FlightOffer{}, fmt.Errorf("%w: offer %q has negative price", ErrInvalidOffer, id)
	}

	cabins := make([]Cabin, len(segments))
	carriers := make([]string, len(segments))
	for i, s := range segments {
		c, err := ParseCabin(s.Cabin)
		if err != nil {
			return FlightOffer{}, fmt.Errorf("offer %q segment %d: %w", id, i, err)
		}
		cabins[i] = c
		carriers[i] = s.Carrier
	}

	first, last := segments[0], segments[len(segments)-1]
	duration := last.ArrivalTime.Sub(first.DepartureTime).Hours()
	if !isFinite(duration) {
		return FlightOffer{}, fmt.Errorf("%w: offer %q has a non-finite duration", ErrInvalidOffer, id)
	}
	if duration < 0 {
		return FlightOffer{}, fmt.Errorf("%w: offer %q arrives before it departs", ErrInvalidOffer, id)
	}

	offer := FlightOffer{
		ID:                 id,
		Price:              price,
		Currency:           currency,
		DepartureHour:      first.DepartureTime.Hour(),
		TotalDurationHours: duration,
		LayoverCount:       len(segments) - 1,
		CabinsPerSegment:   cabins,
		Carrier:            CarrierName(carriers),
		CarrierCodes:       carriers,
		CabinLabel:         CabinLabel(cabins),
		Departure:          first.DepartureTime,
		Arrival:            last.ArrivalTime,
	}

	for i := 0; i < len(segments)-1; i++ {
		offer.LayoverLocations = append(offer.LayoverLocations, airportOrNA(segments[i].ArrivalAirport))
		wait := segments[i+1].DepartureTime.Sub(segments[i].ArrivalTime).Hours()
		offer.LayoverHours = append(offer.LayoverHours, Round2(wait))
	}

	return offer, nil
}

// Validate checks the structural invariants of an offer.
func (o *FlightOffer) Validate() error {
	if len(o.CabinsPerSegment) == 0 {
		return fmt.Errorf("%w: cabinsPerSegment must not be empty", ErrInvalidOffer)
	}
	if o.LayoverCount != len(o.CabinsPerSegment)-1 {
		return fmt.Errorf("%w: layoverCount %d does not match %d segments",
			ErrInvalidOffer, o.LayoverCount, len(o.CabinsPerSegment))
	}
	// NaN and Inf would poison every comparison and the JSON encoder
	if !isFinite(o.Price) {
		return fmt.Errorf("%w: price must be a finite number", ErrInvalidOffer)
	}
	if o.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidOffer)
	}
	if o.DepartureHour < 0 || o.DepartureHour > 23 {
		return fmt.Errorf("%w: departureHour must be between 0 and 23, got %d", ErrInvalidOffer, o.DepartureHour)
	}
	if !isFinite(o.TotalDurationHours) {
		return fmt.Errorf("%w: totalDurationHours must be a finite number", ErrInvalidOffer)
	}
	if o.TotalDurationHours < 0 {
		return fmt.Errorf("%w: totalDurationHours must not be negative", ErrInvalidOffer)
	}
	for _, c := range o.CabinsPerSegment {
		if !c.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidCabinLabel, string(c))
		}
	}
	return nil
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func airportOrNA(code string) string {
	if code == "" {
		return "N/A"
	}
	return code
}
