package usecase

import (
	"sort"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
)

// ScoreOffers scores every offer, keeping input order.
// A failure is reported as a *domain.OfferError naming the offending offer.
func ScoreOffers(offers []domain.FlightOffer, prefs domain.PreferenceSet) ([]domain.ScoredOffer, error) {
	result := make([]domain.ScoredOffer, len(offers))
	for i, o := range offers {
		s, err := Score(o, prefs)
		if err != nil {
			return nil, domain.NewOfferError(i, o.ID, err)
		}
		result[i] = domain.ScoredOffer{Score: s, Offer: o}
	}
	return result, nil
}

// FindBest returns the minimum-score offer. Ties go to the offer that comes
// first. An empty input yields domain.ErrEmptyOfferSet.
func FindBest(offers []domain.FlightOffer, prefs domain.PreferenceSet) (domain.ScoredOffer, error) {
	if len(offers) == 0 {
		return domain.ScoredOffer{}, domain.ErrEmptyOfferSet
	}

	scored, err := ScoreOffers(offers, prefs)
	if err != nil {
		return domain.ScoredOffer{}, err
	}
	return scored[bestIndex(scored)], nil
}

// bestIndex returns the position of the first minimum score. Expects a non-empty slice.
func bestIndex(scored []domain.ScoredOffer) int {
	best := 0
	for i := 1; i < len(scored); i++ {
		if scored[i].Score < scored[best].Score {
			best = i
		}
	}
	return best
}

// SortRankedOffers orders rows for presentation. Sorting is stable, so rows
// that compare equal keep their incoming order.
//
// Sort options:
//   - SortByScore (default): ascending by Score (lower = better)
//   - SortByPrice: ascending by price
//   - SortByDuration: ascending by total duration
//   - SortByDeparture: ascending by departure time
//   - SortByReward: descending by reward amount
//
// Does NOT mutate the input slice.
func SortRankedOffers(rows []domain.RankedOffer, sortBy domain.SortOption) []domain.RankedOffer {
	result := make([]domain.RankedOffer, len(rows))
	copy(result, rows)

	if len(result) <= 1 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByScore
	}

	switch sortBy {
	case domain.SortByScore:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Score < result[j].Score
		})
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Offer.Price < result[j].Offer.Price
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Offer.TotalDurationHours < result[j].Offer.TotalDurationHours
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Offer.Departure.Before(result[j].Offer.Departure)
		})
	case domain.SortByReward:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Reward.Amount > result[j].Reward.Amount
		})
	}

	return result
}

// assignRanks numbers rows 1..n by ascending score, ties in input order.
func assignRanks(rows []domain.RankedOffer) {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return rows[idx[a]].Score < rows[idx[b]].Score
	})
	for pos, i := range idx {
		rows[i].Rank = pos + 1
	}
}
