// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
)

// LoadTestJSON loads a JSON file from the test/testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil lives in test/testutil
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseTime parses an RFC3339 time and fails the test otherwise.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// Leg builds a segment on the given carrier. Times are RFC3339.
func Leg(t *testing.T, carrier, cabin, from, to, departure, arrival string) domain.Segment {
	t.Helper()
	return domain.Segment{
		Carrier:          carrier,
		Cabin:            cabin,
		DepartureAirport: from,
		ArrivalAirport:   to,
		DepartureTime:    MustParseTime(t, departure),
		ArrivalTime:      MustParseTime(t, arrival),
	}
}

// MustOffer builds a FlightOffer from legs and fails the test on error.
func MustOffer(t *testing.T, id string, price float64, legs ...domain.Segment) domain.FlightOffer {
	t.Helper()
	offer, err := domain.NewFlightOffer(id, price, "USD", legs)
	if err != nil {
		t.Fatalf("Failed to build offer %s: %v", id, err)
	}
	return offer
}

// ScenarioOffers returns the two-offer LGA-SFO batch used across tests.
// Under the default preferences A scores 1750 and B scores 2370, so A is
// best and B earns a reward of 100.
func ScenarioOffers(t *testing.T) []domain.FlightOffer {
	t.Helper()
	return []domain.FlightOffer{
		MustOffer(t, "A", 400,
			Leg(t, "UA", "ECONOMY", "LGA", "SFO", "2025-12-15T08:00:00Z", "2025-12-15T13:00:00Z"),
		),
		MustOffer(t, "B", 300,
			Leg(t, "AA", "ECONOMY", "LGA", "ORD", "2025-12-15T14:00:00Z", "2025-12-15T16:00:00Z"),
			Leg(t, "AA", "ECONOMY", "ORD", "SFO", "2025-12-15T18:00:00Z", "2025-12-15T21:00:00Z"),
		),
	}
}

// ScenarioSearch is the search key ScenarioOffers belong to.
func ScenarioSearch() domain.SearchKey {
	return domain.SearchKey{Origin: "LGA", Destination: "SFO", DepartureDate: "2025-12-15"}
}
