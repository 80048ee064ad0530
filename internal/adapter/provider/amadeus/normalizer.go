// Package amadeus converts Amadeus flight-offer payloads into domain offers.
package amadeus

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
)

// ProviderName identifies offers built from Amadeus payloads.
const ProviderName = "amadeus"

// Decode parses a search response body. Both the {"data": [...]} envelope
// and a bare array are accepted.
func Decode(body []byte) ([]FlightOffer, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var offers []FlightOffer
		if err := json.Unmarshal(body, &offers); err != nil {
			return nil, fmt.Errorf("%w: decode amadeus offers: %v", domain.ErrInvalidRequest, err)
		}
		return offers, nil
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode amadeus response: %v", domain.ErrInvalidRequest, err)
	}
	return resp.Data, nil
}

// Normalize converts every offer. The first offer that cannot be converted
// fails the batch with a domain.OfferError carrying its index.
func Normalize(offers []FlightOffer) ([]domain.FlightOffer, error) {
	result := make([]domain.FlightOffer, 0, len(offers))
	for i, o := range offers {
		n, err := normalizeOffer(i, o)
		if err != nil {
			return nil, domain.NewOfferError(i, o.ID, err)
		}
		result = append(result, n)
	}
	return result, nil
}

// normalizeOffer only looks at the outbound itinerary.
func normalizeOffer(index int, o FlightOffer) (domain.FlightOffer, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(o.Price.GrandTotal), 64)
	if err != nil {
		return domain.FlightOffer{}, fmt.Errorf("%w: price.grandTotal %q is not a number", domain.ErrInvalidOffer, o.Price.GrandTotal)
	}

	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return domain.FlightOffer{}, fmt.Errorf("%w: no outbound segments", domain.ErrInvalidOffer)
	}

	cabins := cabinsBySegment(o.TravelerPricings)

	raw := o.Itineraries[0].Segments
	segments := make([]domain.Segment, 0, len(raw))
	for _, s := range raw {
		dep, err := timeutil.ParseDateTime(s.Departure.At)
		if err != nil {
			return domain.FlightOffer{}, fmt.Errorf("%w: segment %s departure: %v", domain.ErrInvalidOffer, s.ID, err)
		}
		arr, err := timeutil.ParseDateTime(s.Arrival.At)
		if err != nil {
			return domain.FlightOffer{}, fmt.Errorf("%w: segment %s arrival: %v", domain.ErrInvalidOffer, s.ID, err)
		}

		segments = append(segments, domain.Segment{
			Carrier:          s.CarrierCode,
			FlightNumber:     s.CarrierCode + s.Number,
			Cabin:            cabins[s.ID],
			DepartureAirport: s.Departure.IataCode,
			ArrivalAirport:   s.Arrival.IataCode,
			DepartureTime:    dep,
			ArrivalTime:      arr,
		})
	}

	id := o.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", ProviderName, index+1)
	}

	return domain.NewFlightOffer(id, price, o.Price.Currency, segments)
}

// cabinsBySegment maps segment id to cabin. The first traveler that prices
// a segment wins.
func cabinsBySegment(pricings []TravelerPricing) map[string]string {
	out := make(map[string]string)
	for _, tp := range pricings {
		for _, fd := range tp.FareDetailsBySegment {
			if _, seen := out[fd.SegmentID]; !seen && fd.Cabin != "" {
				out[fd.SegmentID] = fd.Cabin
			}
		}
	}
	return out
}
