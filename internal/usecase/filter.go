package usecase

import (
	"github.com/flight-search/flight-offer-ranker/internal/domain"
)

// ApplyFilters returns the offers that match every filter criterion.
//
// Behavior:
//   - Returns the original slice if opts is nil (no filtering)
//   - Nil/empty filter values are skipped
//   - Does NOT mutate the original offers slice
func ApplyFilters(offers []domain.FlightOffer, opts *domain.FilterOptions) []domain.FlightOffer {
	if opts == nil {
		return offers
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if opts.MatchesOffer(o) {
			result = append(result, o)
		}
	}
	return result
}
