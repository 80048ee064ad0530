package usecase

import "github.com/flight-search/flight-offer-ranker/internal/domain"

// RankOptions contains optional parameters for a ranking run.
type RankOptions struct {
	// Filters narrows the offers before scoring
	Filters *domain.FilterOptions

	// SortBy specifies the row order (default: score)
	SortBy domain.SortOption
}

// DefaultRankOptions returns RankOptions with sensible defaults.
func DefaultRankOptions() RankOptions {
	return RankOptions{
		Filters: nil,
		SortBy:  domain.SortByScore,
	}
}
