package domain

import "time"

// Reward is the payout for an offer relative to the best-scoring offer's price.
type Reward struct {
	// Amount is the share of the price differential returned to the traveler
	Amount float64 `json:"amount"`

	// Retained is the part of the differential kept as savings
	Retained float64 `json:"retained"`
}

// ScoredOffer pairs an offer with its score.
type ScoredOffer struct {
	Score float64     `json:"score"`
	Offer FlightOffer `json:"offer"`
}

// RankedOffer is one presentation row.
type RankedOffer struct {
	// Rank is the 1-based position by score
	Rank int `json:"rank"`

	// Score is the penalty total; lower is better
	Score float64 `json:"score"`

	// Reward is relative to the best offer's price
	Reward Reward `json:"reward"`

	// IsBest marks the minimum-score offer
	IsBest bool `json:"isBest"`

	// Offer carries the pass-through display fields
	Offer FlightOffer `json:"offer"`
}

// RankResponse is the result of ranking one search.
type RankResponse struct {
	// Search identifies the route and date
	Search SearchKey `json:"search"`

	// Preferences echoes the preference set the rows were scored with
	Preferences PreferenceSet `json:"preferences"`

	// Best is the minimum-score offer
	Best ScoredOffer `json:"best"`

	// Offers holds one row per offer, ordered per SortBy
	Offers []RankedOffer `json:"offers"`

	// Metadata describes the ranking run
	Metadata RankMetadata `json:"metadata"`
}

// RankMetadata contains information about a ranking run.
type RankMetadata struct {
	// TotalOffers is the number of offers received before filtering
	TotalOffers int `json:"totalOffers"`

	// RankedOffers is the number of offers that survived filtering
	RankedOffers int `json:"rankedOffers"`

	// SortBy is the ordering applied to Offers
	SortBy SortOption `json:"sortBy"`

	// FromCache is true when offers came from a previous search
	FromCache bool `json:"fromCache"`

	// RankedAt is when the ranking was computed
	RankedAt time.Time `json:"rankedAt"`

	// DurationMs is how long ranking took
	DurationMs int64 `json:"durationMs"`
}
