// Package http is the echo transport for the offer ranking API.
package http

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
)

// SearchDTO identifies the route and date being ranked.
type SearchDTO struct {
	// Origin is the IATA code of the departure airport (e.g., "LGA")
	Origin string `json:"origin" example:"LGA"`

	// Destination is the IATA code of the arrival airport (e.g., "SFO")
	Destination string `json:"destination" example:"SFO"`

	// DepartureDate is the travel date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-12-15"`
}

// PreferencesDTO carries the scoring weights. Omitted fields take their
// default values; an explicitly empty idealDepartureHours is rejected.
type PreferencesDTO struct {
	AllowedCabin            *string  `json:"allowedCabin,omitempty" example:"FIRST"`
	LayoverPenaltyPerStop   *float64 `json:"layoverPenaltyPerStop,omitempty" example:"500"`
	DurationPenaltyPerHour  *float64 `json:"durationPenaltyPerHour,omitempty" example:"50"`
	BaselineDurationHours   *float64 `json:"baselineDurationHours,omitempty" example:"0"`
	IdealDepartureHours     []int    `json:"idealDepartureHours,omitempty"`
	DeparturePenaltyPerHour *float64 `json:"departurePenaltyPerHour,omitempty" example:"20"`
	CabinPenaltyPerStep     *float64 `json:"cabinPenaltyPerStep,omitempty" example:"500"`
	RewardAdjustmentFactor  *float64 `json:"rewardAdjustmentFactor,omitempty" example:"1"`
}

// SegmentDTO is one leg of an offer. Times are ISO 8601 local times.
type SegmentDTO struct {
	Carrier       string `json:"carrier" example:"AA"`
	FlightNumber  string `json:"flightNumber,omitempty" example:"AA321"`
	Cabin         string `json:"cabin" example:"ECONOMY"`
	From          string `json:"from" example:"LGA"`
	To            string `json:"to" example:"ORD"`
	DepartureTime string `json:"departureTime" example:"2025-12-15T07:00:00"`
	ArrivalTime   string `json:"arrivalTime" example:"2025-12-15T08:40:00"`
}

// OfferDTO is a priced itinerary submitted for ranking.
type OfferDTO struct {
	ID       string       `json:"id" example:"1"`
	Price    float64      `json:"price" example:"412.30"`
	Currency string       `json:"currency,omitempty" example:"USD"`
	Segments []SegmentDTO `json:"segments"`
}

// FilterDTO narrows the offers before scoring.
// Example: {"maxPrice": 600, "maxStops": 1, "carriers": ["AA"], "departureHourRange": {"start": 6, "end": 12}}
type FilterDTO struct {
	// MaxPrice drops offers priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"600"`

	// MaxStops drops offers with more layovers (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"1"`

	// Carriers keeps offers with at least one leg on these carrier codes
	Carriers []string `json:"carriers,omitempty"`

	// DepartureHourRange keeps offers departing within the inclusive hour window
	DepartureHourRange *HourRangeDTO `json:"departureHourRange,omitempty"`

	// MaxDurationHours drops offers longer than this
	MaxDurationHours *float64 `json:"maxDurationHours,omitempty" example:"10"`
}

// HourRangeDTO is an inclusive window of departure hours.
type HourRangeDTO struct {
	Start int `json:"start" example:"6"`
	End   int `json:"end" example:"12"`
}

// RankOffersRequest is the body of POST /api/v1/offers/rank.
type RankOffersRequest struct {
	Search      SearchDTO       `json:"search"`
	Preferences *PreferencesDTO `json:"preferences,omitempty"`
	Offers      []OfferDTO      `json:"offers"`
	SortBy      string          `json:"sortBy,omitempty" example:"score"`
	Filters     *FilterDTO      `json:"filters,omitempty"`
}

// RankAmadeusRequest is the body of POST /api/v1/offers/rank/amadeus.
// Data holds the flight-offers-search response, either the whole envelope
// or just its data array.
type RankAmadeusRequest struct {
	Search      SearchDTO       `json:"search"`
	Preferences *PreferencesDTO `json:"preferences,omitempty"`
	Data        json.RawMessage `json:"data" swaggertype:"array,object"`
	SortBy      string          `json:"sortBy,omitempty" example:"score"`
	Filters     *FilterDTO      `json:"filters,omitempty"`
}

// RerankRequest is the body of POST /api/v1/offers/rerank.
type RerankRequest struct {
	Search      SearchDTO       `json:"search"`
	Preferences *PreferencesDTO `json:"preferences,omitempty"`
	SortBy      string          `json:"sortBy,omitempty" example:"reward"`
	Filters     *FilterDTO      `json:"filters,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	carrierCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)
)

var validSortOptions = map[string]bool{
	"":          true,
	"score":     true,
	"price":     true,
	"duration":  true,
	"departure": true,
	"reward":    true,
}

// ValidationError is a field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every field-level failure of a request.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Unwrap lets errors.Is match domain.ErrInvalidRequest.
func (v *ValidationErrors) Unwrap() error {
	return domain.ErrInvalidRequest
}

// Add records a failure for field.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether anything was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts the failures into the response details map.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

func (v *ValidationErrors) orNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// Validate checks the request shape. Cabin labels and preference ranges are
// checked by the domain when the request is converted.
func (r *RankOffersRequest) Validate() error {
	errs := &ValidationErrors{}
	validateSearch(&r.Search, errs)
	validatePreferences(r.Preferences, errs)
	validateSortBy(r.SortBy, errs)
	validateFilters(r.Filters, errs)

	for i, o := range r.Offers {
		validateOffer(i, o, errs)
	}
	return errs.orNil()
}

// Validate checks the request shape.
func (r *RankAmadeusRequest) Validate() error {
	errs := &ValidationErrors{}
	validateSearch(&r.Search, errs)
	validatePreferences(r.Preferences, errs)
	validateSortBy(r.SortBy, errs)
	validateFilters(r.Filters, errs)

	if len(r.Data) == 0 || string(r.Data) == "null" {
		errs.Add("data", "data is required")
	}
	return errs.orNil()
}

// Validate checks the request shape.
func (r *RerankRequest) Validate() error {
	errs := &ValidationErrors{}
	validateSearch(&r.Search, errs)
	validatePreferences(r.Preferences, errs)
	validateSortBy(r.SortBy, errs)
	validateFilters(r.Filters, errs)
	return errs.orNil()
}

// validateSearch upper-cases the airport codes in place.
func validateSearch(s *SearchDTO, errs *ValidationErrors) {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.DepartureDate = strings.TrimSpace(s.DepartureDate)

	switch {
	case s.Origin == "":
		errs.Add("search.origin", "origin is required")
	case !airportCodePattern.MatchString(s.Origin):
		errs.Add("search.origin", "origin must be a valid 3-letter IATA airport code")
	}

	switch {
	case s.Destination == "":
		errs.Add("search.destination", "destination is required")
	case !airportCodePattern.MatchString(s.Destination):
		errs.Add("search.destination", "destination must be a valid 3-letter IATA airport code")
	case s.Origin == s.Destination:
		errs.Add("search.destination", "origin and destination must be different")
	}

	switch {
	case s.DepartureDate == "":
		errs.Add("search.departureDate", "departureDate is required")
	case !datePattern.MatchString(s.DepartureDate):
		errs.Add("search.departureDate", "departureDate must be in YYYY-MM-DD format")
	default:
		if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
			errs.Add("search.departureDate", "departureDate is not a valid date")
		}
	}
}

func validatePreferences(p *PreferencesDTO, errs *ValidationErrors) {
	if p == nil {
		return
	}

	if p.AllowedCabin != nil {
		if _, err := domain.ParseCabin(*p.AllowedCabin); err != nil {
			errs.Add("preferences.allowedCabin", "allowedCabin must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST")
		}
	}

	for i, h := range p.IdealDepartureHours {
		if h < 0 || h > 23 {
			errs.Add(fmt.Sprintf("preferences.idealDepartureHours[%d]", i), "hour must be between 0 and 23")
		}
	}

	weights := []struct {
		field string
		value *float64
	}{
		{"preferences.layoverPenaltyPerStop", p.LayoverPenaltyPerStop},
		{"preferences.durationPenaltyPerHour", p.DurationPenaltyPerHour},
		{"preferences.baselineDurationHours", p.BaselineDurationHours},
		{"preferences.departurePenaltyPerHour", p.DeparturePenaltyPerHour},
		{"preferences.cabinPenaltyPerStep", p.CabinPenaltyPerStep},
	}
	for _, w := range weights {
		if w.value != nil && (*w.value < 0 || math.IsNaN(*w.value)) {
			errs.Add(w.field, "must be a non-negative number")
		}
	}

	if f := p.RewardAdjustmentFactor; f != nil && (*f < 0 || *f > 1) {
		errs.Add("preferences.rewardAdjustmentFactor", "rewardAdjustmentFactor must be between 0 and 1")
	}
}

func validateSortBy(sortBy string, errs *ValidationErrors) {
	if !validSortOptions[strings.ToLower(sortBy)] {
		errs.Add("sortBy", "sortBy must be one of: score, price, duration, departure, reward")
	}
}

// validateFilters upper-cases carrier codes in place.
func validateFilters(f *FilterDTO, errs *ValidationErrors) {
	if f == nil {
		return
	}

	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}
	if f.MaxStops != nil && *f.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must be a non-negative number")
	}
	if f.MaxDurationHours != nil && *f.MaxDurationHours <= 0 {
		errs.Add("filters.maxDurationHours", "maxDurationHours must be a positive number")
	}

	for i, code := range f.Carriers {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if !carrierCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("filters.carriers[%d]", i), "carrier code must be 2 or 3 alphanumeric characters")
		}
		f.Carriers[i] = normalized
	}

	if r := f.DepartureHourRange; r != nil {
		hr := domain.HourRange{Start: r.Start, End: r.End}
		if !hr.IsValid() {
			errs.Add("filters.departureHourRange", "start and end must be hours 0-23 with start <= end")
		}
	}
}

func validateOffer(i int, o OfferDTO, errs *ValidationErrors) {
	prefix := fmt.Sprintf("offers[%d]", i)

	if o.Price < 0 || math.IsNaN(o.Price) {
		errs.Add(prefix+".price", "price must not be negative")
	}
	if len(o.Segments) == 0 {
		errs.Add(prefix+".segments", "at least one segment is required")
		return
	}

	for j, s := range o.Segments {
		field := fmt.Sprintf("%s.segments[%d]", prefix, j)
		if _, err := timeutil.ParseDateTime(s.DepartureTime); err != nil {
			errs.Add(field+".departureTime", "departureTime must be an ISO 8601 date-time")
		}
		if _, err := timeutil.ParseDateTime(s.ArrivalTime); err != nil {
			errs.Add(field+".arrivalTime", "arrivalTime must be an ISO 8601 date-time")
		}
		if strings.TrimSpace(s.Cabin) == "" {
			errs.Add(field+".cabin", "cabin is required")
		}
	}
}
