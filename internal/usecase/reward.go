package usecase

import "github.com/flight-search/flight-offer-ranker/internal/domain"

// CalculateReward derives the payout for an offer priced at price against the
// best-scoring offer's bestPrice.
//
// The raw differential is bestPrice - price and is negative for offers that
// cost more than the best one. Amount is the differential scaled by factor;
// Retained is what is left of the differential. Both are rounded to cents,
// halves away from zero.
func CalculateReward(price, bestPrice, factor float64) domain.Reward {
	raw := bestPrice - price
	amount := domain.Round2(raw * factor)
	return domain.Reward{
		Amount:   amount,
		Retained: domain.Round2(raw - amount),
	}
}
