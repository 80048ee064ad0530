package domain

import "strings"

// SortOption defines how ranked rows are ordered for presentation.
type SortOption string

// Available sort options.
const (
	// SortByScore sorts by score ascending (default)
	SortByScore SortOption = "score"

	// SortByPrice sorts by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by total duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure time ascending (earliest first)
	SortByDeparture SortOption = "departure"

	// SortByReward sorts by reward descending (largest payout first)
	SortByReward SortOption = "reward"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByScore, SortByPrice, SortByDuration, SortByDeparture, SortByReward:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByScore if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if option.IsValid() {
		return option
	}
	return SortByScore
}

// FilterOptions narrows the offer set before it is ranked.
type FilterOptions struct {
	// MaxPrice drops offers priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops drops offers with more layovers than this value
	MaxStops *int `json:"maxStops,omitempty"`

	// Carriers keeps only offers flown at least partly by one of these carrier codes
	Carriers []string `json:"carriers,omitempty"`

	// DepartureHourRange keeps offers departing within the hour window
	DepartureHourRange *HourRange `json:"departureHourRange,omitempty"`

	// MaxDurationHours drops offers longer than this many hours
	MaxDurationHours *float64 `json:"maxDurationHours,omitempty"`
}

// HourRange is an inclusive window of departure hours.
type HourRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IsValid reports whether both bounds are hours and Start <= End.
func (r *HourRange) IsValid() bool {
	if r == nil {
		return true
	}
	return r.Start >= 0 && r.End <= 23 && r.Start <= r.End
}

// Contains reports whether hour falls within the window.
func (r *HourRange) Contains(hour int) bool {
	if r == nil {
		return true
	}
	return hour >= r.Start && hour <= r.End
}

// MatchesOffer checks if an offer passes every configured filter.
func (f *FilterOptions) MatchesOffer(offer FlightOffer) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && offer.Price > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && offer.LayoverCount > *f.MaxStops {
		return false
	}

	if len(f.Carriers) > 0 && !offerFlownBy(offer, f.Carriers) {
		return false
	}

	if f.DepartureHourRange != nil && !f.DepartureHourRange.Contains(offer.DepartureHour) {
		return false
	}

	if f.MaxDurationHours != nil && offer.TotalDurationHours > *f.MaxDurationHours {
		return false
	}

	return true
}

// offerFlownBy checks carriers case-insensitively.
func offerFlownBy(offer FlightOffer, carriers []string) bool {
	for _, have := range offer.CarrierCodes {
		for _, want := range carriers {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
