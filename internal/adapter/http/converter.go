package http

import (
	"fmt"
	"strings"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-offer-ranker/internal/usecase"
)

// ToSearchKey converts the search DTO.
func ToSearchKey(dto SearchDTO) domain.SearchKey {
	return domain.SearchKey{
		Origin:        dto.Origin,
		Destination:   dto.Destination,
		DepartureDate: dto.DepartureDate,
	}.Normalize()
}

// ToPreferences overlays the supplied fields on the default preference set.
// defaultFactor replaces the default reward factor when the caller omits it.
func ToPreferences(dto *PreferencesDTO, defaultFactor float64) domain.PreferenceSet {
	prefs := domain.DefaultPreferences()
	prefs.RewardAdjustmentFactor = defaultFactor
	if dto == nil {
		return prefs
	}

	if dto.AllowedCabin != nil {
		prefs.AllowedCabin = domain.Cabin(strings.ToUpper(strings.TrimSpace(*dto.AllowedCabin)))
	}
	if dto.IdealDepartureHours != nil {
		prefs.IdealDepartureHours = make([]int, len(dto.IdealDepartureHours))
		copy(prefs.IdealDepartureHours, dto.IdealDepartureHours)
	}
	setFloat(&prefs.LayoverPenaltyPerStop, dto.LayoverPenaltyPerStop)
	setFloat(&prefs.DurationPenaltyPerHour, dto.DurationPenaltyPerHour)
	setFloat(&prefs.BaselineDurationHours, dto.BaselineDurationHours)
	setFloat(&prefs.DeparturePenaltyPerHour, dto.DeparturePenaltyPerHour)
	setFloat(&prefs.CabinPenaltyPerStep, dto.CabinPenaltyPerStep)
	setFloat(&prefs.RewardAdjustmentFactor, dto.RewardAdjustmentFactor)

	return prefs
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// ToFlightOffers builds domain offers from the submitted segments. The first
// offer that cannot be built is reported as a *domain.OfferError.
func ToFlightOffers(dtos []OfferDTO) ([]domain.FlightOffer, error) {
	offers := make([]domain.FlightOffer, 0, len(dtos))
	for i, dto := range dtos {
		id := dto.ID
		if id == "" {
			id = fmt.Sprintf("offer-%d", i+1)
		}

		segments, err := toSegments(dto.Segments)
		if err != nil {
			return nil, domain.NewOfferError(i, id, err)
		}

		o, err := domain.NewFlightOffer(id, dto.Price, dto.Currency, segments)
		if err != nil {
			return nil, domain.NewOfferError(i, id, err)
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func toSegments(dtos []SegmentDTO) ([]domain.Segment, error) {
	segments := make([]domain.Segment, 0, len(dtos))
	for j, s := range dtos {
		dep, err := timeutil.ParseDateTime(s.DepartureTime)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", domain.ErrInvalidOffer, j, err)
		}
		arr, err := timeutil.ParseDateTime(s.ArrivalTime)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", domain.ErrInvalidOffer, j, err)
		}
		segments = append(segments, domain.Segment{
			Carrier:          strings.ToUpper(strings.TrimSpace(s.Carrier)),
			FlightNumber:     s.FlightNumber,
			Cabin:            s.Cabin,
			DepartureAirport: strings.ToUpper(s.From),
			ArrivalAirport:   strings.ToUpper(s.To),
			DepartureTime:    dep,
			ArrivalTime:      arr,
		})
	}
	return segments, nil
}

// ToDomainFilters converts the filter DTO. Nil stays nil.
func ToDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}

	filters := &domain.FilterOptions{
		MaxPrice:         dto.MaxPrice,
		MaxStops:         dto.MaxStops,
		Carriers:         dto.Carriers,
		MaxDurationHours: dto.MaxDurationHours,
	}
	if dto.DepartureHourRange != nil {
		filters.DepartureHourRange = &domain.HourRange{
			Start: dto.DepartureHourRange.Start,
			End:   dto.DepartureHourRange.End,
		}
	}
	return filters
}

// ToRankOptions builds the sort and filter options of a ranking run.
func ToRankOptions(sortBy string, filters *FilterDTO) usecase.RankOptions {
	return usecase.RankOptions{
		Filters: ToDomainFilters(filters),
		SortBy:  domain.ParseSortOption(sortBy),
	}
}
