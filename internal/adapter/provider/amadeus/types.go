package amadeus

// FlightOffer mirrors the subset of an Amadeus flight-offers-search item
// that ranking needs.
type FlightOffer struct {
	ID               string            `json:"id"`
	Source           string            `json:"source,omitempty"`
	Price            Price             `json:"price"`
	Itineraries      []Itinerary       `json:"itineraries"`
	TravelerPricings []TravelerPricing `json:"travelerPricings"`
}

// Price holds monetary amounts, which Amadeus sends as strings.
type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total,omitempty"`
	GrandTotal string `json:"grandTotal"`
}

// Itinerary is one direction of travel.
type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

// Segment is one flown leg.
type Segment struct {
	ID            string   `json:"id"`
	Departure     Endpoint `json:"departure"`
	Arrival       Endpoint `json:"arrival"`
	CarrierCode   string   `json:"carrierCode"`
	Number        string   `json:"number"`
	NumberOfStops int      `json:"numberOfStops,omitempty"`
}

// Endpoint is a departure or arrival point. At is local time without offset.
type Endpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// TravelerPricing carries the per-segment fare details of one traveler.
type TravelerPricing struct {
	TravelerID           string                `json:"travelerId"`
	FareDetailsBySegment []FareDetailBySegment `json:"fareDetailsBySegment"`
}

// FareDetailBySegment names the cabin booked on a segment.
type FareDetailBySegment struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin"`
	Class     string `json:"class,omitempty"`
}

// SearchResponse is the envelope returned by the flight-offers endpoint.
type SearchResponse struct {
	Data []FlightOffer `json:"data"`
}
