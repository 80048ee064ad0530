// Package usecase contains the offer scoring engine and the ranking use case built on it.
package usecase

import (
	"fmt"
	"math"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
)

// LayoverPenalty charges a flat weight per intermediate stop.
func LayoverPenalty(offer domain.FlightOffer, prefs domain.PreferenceSet) float64 {
	return float64(offer.LayoverCount) * prefs.LayoverPenaltyPerStop
}

// DurationPenalty charges only the hours beyond the baseline allowance.
func DurationPenalty(offer domain.FlightOffer, prefs domain.PreferenceSet) float64 {
	extra := math.Max(offer.TotalDurationHours-prefs.BaselineDurationHours, 0)
	return extra * prefs.DurationPenaltyPerHour
}

// DeparturePenalty charges the distance to the nearest ideal hour, not the sum
// over all of them.
func DeparturePenalty(offer domain.FlightOffer, prefs domain.PreferenceSet) (float64, error) {
	if len(prefs.IdealDepartureHours) == 0 {
		return 0, domain.ErrEmptyIdealHours
	}

	best := math.Inf(1)
	for _, h := range prefs.IdealDepartureHours {
		p := math.Abs(float64(offer.DepartureHour-h)) * prefs.DeparturePenaltyPerHour
		if p < best {
			best = p
		}
	}
	return best, nil
}

// CabinPenalty charges per tier the offer's best cabin sits below the allowed
// cabin. Offers above the allowed cabin are not penalized.
func CabinPenalty(offer domain.FlightOffer, prefs domain.PreferenceSet) (float64, error) {
	allowedRank, err := prefs.AllowedCabin.Rank()
	if err != nil {
		return 0, err
	}

	effective, err := domain.EffectiveCabin(offer.CabinsPerSegment)
	if err != nil {
		return 0, err
	}
	effectiveRank, _ := effective.Rank()

	if effectiveRank > allowedRank {
		return 0, nil
	}
	return float64(allowedRank-effectiveRank) * prefs.CabinPenaltyPerStep, nil
}

// PenaltyBreakdown itemizes a score.
type PenaltyBreakdown struct {
	Layover   float64 `json:"layover"`
	Duration  float64 `json:"duration"`
	Departure float64 `json:"departure"`
	Cabin     float64 `json:"cabin"`
}

// Total sums the four penalties.
func (b PenaltyBreakdown) Total() float64 {
	return b.Layover + b.Duration + b.Departure + b.Cabin
}

// Penalties computes every penalty for one offer.
func Penalties(offer domain.FlightOffer, prefs domain.PreferenceSet) (PenaltyBreakdown, error) {
	departure, err := DeparturePenalty(offer, prefs)
	if err != nil {
		return PenaltyBreakdown{}, err
	}

	cabin, err := CabinPenalty(offer, prefs)
	if err != nil {
		return PenaltyBreakdown{}, fmt.Errorf("cabin penalty: %w", err)
	}

	return PenaltyBreakdown{
		Layover:   LayoverPenalty(offer, prefs),
		Duration:  DurationPenalty(offer, prefs),
		Departure: departure,
		Cabin:     cabin,
	}, nil
}

// Score returns the weighted penalty total for an offer. Lower is better.
// The weights in prefs are the only balancing between dimensions.
func Score(offer domain.FlightOffer, prefs domain.PreferenceSet) (float64, error) {
	b, err := Penalties(offer, prefs)
	if err != nil {
		return 0, err
	}
	return b.Total(), nil
}
