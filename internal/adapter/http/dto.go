package http

import (
	"time"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
)

// RankResponseDTO is the body returned by the ranking endpoints.
type RankResponseDTO struct {
	Search      SearchDTO            `json:"search"`
	Preferences domain.PreferenceSet `json:"preferences"`
	Best        OfferRowDTO          `json:"best"`
	Offers      []OfferRowDTO        `json:"offers"`
	Metadata    MetadataDTO          `json:"metadata"`
}

// MetadataDTO describes the ranking run.
type MetadataDTO struct {
	TotalOffers  int    `json:"totalOffers"`
	RankedOffers int    `json:"rankedOffers"`
	SortBy       string `json:"sortBy"`
	FromCache    bool   `json:"fromCache"`
	RankedAt     string `json:"rankedAt"`
	DurationMs   int64  `json:"durationMs"`
}

// OfferRowDTO is one row of the ranked table.
type OfferRowDTO struct {
	Rank     int     `json:"rank"`
	ID       string  `json:"id"`
	Score    float64 `json:"score"`
	Reward   float64 `json:"reward"`
	Retained float64 `json:"retained"`
	IsBest   bool    `json:"isBest"`

	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
	Carrier  string  `json:"carrier"`
	Cabin    string  `json:"cabin"`

	// Departure and Arrival are wall-clock times, e.g. "07:00 AM"
	Departure     string `json:"departure"`
	Arrival       string `json:"arrival"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`

	TotalDurationHours float64   `json:"totalDurationHours"`
	Layovers           int       `json:"layovers"`
	LayoverLocations   []string  `json:"layoverLocations"`
	LayoverHours       []float64 `json:"layoverHours"`
}

// ToRankResponseDTO converts a use case result into the response body.
func ToRankResponseDTO(resp *domain.RankResponse) *RankResponseDTO {
	rows := make([]OfferRowDTO, len(resp.Offers))
	var best OfferRowDTO
	for i, r := range resp.Offers {
		rows[i] = ToOfferRowDTO(r)
		if r.IsBest {
			best = rows[i]
		}
	}

	return &RankResponseDTO{
		Search: SearchDTO{
			Origin:        resp.Search.Origin,
			Destination:   resp.Search.Destination,
			DepartureDate: resp.Search.DepartureDate,
		},
		Preferences: resp.Preferences,
		Best:        best,
		Offers:      rows,
		Metadata: MetadataDTO{
			TotalOffers:  resp.Metadata.TotalOffers,
			RankedOffers: resp.Metadata.RankedOffers,
			SortBy:       string(resp.Metadata.SortBy),
			FromCache:    resp.Metadata.FromCache,
			RankedAt:     resp.Metadata.RankedAt.UTC().Format(time.RFC3339),
			DurationMs:   resp.Metadata.DurationMs,
		},
	}
}

// ToOfferRowDTO converts one ranked row.
func ToOfferRowDTO(r domain.RankedOffer) OfferRowDTO {
	o := r.Offer

	locations := o.LayoverLocations
	if locations == nil {
		locations = []string{}
	}
	hours := o.LayoverHours
	if hours == nil {
		hours = []float64{}
	}

	return OfferRowDTO{
		Rank:               r.Rank,
		ID:                 o.ID,
		Score:              domain.Round2(r.Score),
		Reward:             r.Reward.Amount,
		Retained:           r.Reward.Retained,
		IsBest:             r.IsBest,
		Price:              o.Price,
		Currency:           o.Currency,
		Carrier:            o.Carrier,
		Cabin:              o.CabinLabel,
		Departure:          timeutil.FormatClock(o.Departure),
		Arrival:            timeutil.FormatClock(o.Arrival),
		DepartureTime:      o.Departure.Format(time.RFC3339),
		ArrivalTime:        o.Arrival.Format(time.RFC3339),
		TotalDurationHours: domain.Round2(o.TotalDurationHours),
		Layovers:           o.LayoverCount,
		LayoverLocations:   locations,
		LayoverHours:       hours,
	}
}
