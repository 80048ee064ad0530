package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchKey identifies one search: a route on a date. It keys the offer cache.
type SearchKey struct {
	// Origin is the IATA code of the departure airport (e.g., "LGA")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "SFO")
	Destination string `json:"destination"`

	// DepartureDate is the travel date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Normalize upper-cases the airport codes and trims whitespace.
func (k SearchKey) Normalize() SearchKey {
	return SearchKey{
		Origin:        strings.ToUpper(strings.TrimSpace(k.Origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(k.Destination)),
		DepartureDate: strings.TrimSpace(k.DepartureDate),
	}
}

// Validate checks the key. Returns a wrapped ErrInvalidRequest on failure.
func (k SearchKey) Validate() error {
	if k.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(k.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, k.Origin)
	}

	if k.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(k.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, k.Destination)
	}

	if k.Origin == k.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if k.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(k.DepartureDate) {
		return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, k.DepartureDate)
	}
	if _, err := time.Parse("2006-01-02", k.DepartureDate); err != nil {
		return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, k.DepartureDate)
	}

	return nil
}

// String renders the key as "LGA-SFO-2025-12-15".
func (k SearchKey) String() string {
	return k.Origin + "-" + k.Destination + "-" + k.DepartureDate
}
