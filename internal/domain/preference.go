package domain

import (
	"fmt"
	"math"
)

// PreferenceSet holds the weights used to score offers for one search.
// All weights share whatever unit the caller chooses; nothing is normalized.
type PreferenceSet struct {
	// AllowedCabin is the highest cabin the traveler is willing to accept
	AllowedCabin Cabin `json:"allowedCabin"`

	// LayoverPenaltyPerStop is charged once per intermediate stop
	LayoverPenaltyPerStop float64 `json:"layoverPenaltyPerStop"`

	// DurationPenaltyPerHour is charged per hour beyond BaselineDurationHours
	DurationPenaltyPerHour float64 `json:"durationPenaltyPerHour"`

	// BaselineDurationHours is a free allowance before duration is penalized
	BaselineDurationHours float64 `json:"baselineDurationHours"`

	// IdealDepartureHours lists the preferred departure hours [0,23]
	IdealDepartureHours []int `json:"idealDepartureHours"`

	// DeparturePenaltyPerHour is charged per hour of distance to the nearest ideal hour
	DeparturePenaltyPerHour float64 `json:"departurePenaltyPerHour"`

	// CabinPenaltyPerStep is charged per cabin tier below AllowedCabin
	CabinPenaltyPerStep float64 `json:"cabinPenaltyPerStep"`

	// RewardAdjustmentFactor is the share [0,1] of the price differential paid out as reward
	RewardAdjustmentFactor float64 `json:"rewardAdjustmentFactor"`
}

// DefaultPreferences returns the preference set used when a caller supplies none.
func DefaultPreferences() PreferenceSet {
	return PreferenceSet{
		AllowedCabin:            CabinFirst,
		LayoverPenaltyPerStop:   500,
		DurationPenaltyPerHour:  50,
		BaselineDurationHours:   0,
		IdealDepartureHours:     []int{8, 15},
		DeparturePenaltyPerHour: 20,
		CabinPenaltyPerStep:     500,
		RewardAdjustmentFactor:  1.0,
	}
}

// Validate checks that every weight is usable. An empty ideal-hour set is
// reported as ErrEmptyIdealHours so callers can tell it apart.
func (p *PreferenceSet) Validate() error {
	if !p.AllowedCabin.IsValid() {
		return fmt.Errorf("%w: allowedCabin %q", ErrInvalidCabinLabel, string(p.AllowedCabin))
	}
	if len(p.IdealDepartureHours) == 0 {
		return ErrEmptyIdealHours
	}
	for _, h := range p.IdealDepartureHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: ideal departure hour %d is outside 0-23", ErrInvalidPreferences, h)
		}
	}

	weights := []struct {
		name  string
		value float64
	}{
		{"layoverPenaltyPerStop", p.LayoverPenaltyPerStop},
		{"durationPenaltyPerHour", p.DurationPenaltyPerHour},
		{"baselineDurationHours", p.BaselineDurationHours},
		{"departurePenaltyPerHour", p.DeparturePenaltyPerHour},
		{"cabinPenaltyPerStep", p.CabinPenaltyPerStep},
	}
	for _, w := range weights {
		if w.value < 0 || math.IsNaN(w.value) || math.IsInf(w.value, 0) {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidPreferences, w.name)
		}
	}

	if p.RewardAdjustmentFactor < 0 || p.RewardAdjustmentFactor > 1 || math.IsNaN(p.RewardAdjustmentFactor) {
		return fmt.Errorf("%w: rewardAdjustmentFactor must be between 0 and 1", ErrInvalidPreferences)
	}

	return nil
}
