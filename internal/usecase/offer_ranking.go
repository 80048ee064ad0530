package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
)

// DefaultMaxOffers caps how many offers a single request may carry.
const DefaultMaxOffers = 500

// OfferRankingUseCase defines the ranking operations exposed to transports.
type OfferRankingUseCase interface {
	// Rank scores a fresh batch of offers for a search and remembers them
	// so the search can be re-ranked later.
	Rank(ctx context.Context, req RankRequest) (*domain.RankResponse, error)

	// Rerank scores the offers last stored for key under new preferences.
	Rerank(ctx context.Context, key domain.SearchKey, prefs domain.PreferenceSet, opts RankOptions) (*domain.RankResponse, error)
}

// RankRequest is the input to OfferRankingUseCase.Rank.
type RankRequest struct {
	Search      domain.SearchKey
	Offers      []domain.FlightOffer
	Preferences domain.PreferenceSet
	Options     RankOptions
}

// Config contains configuration options for the use case.
type Config struct {
	// MaxOffers rejects larger batches; zero means DefaultMaxOffers
	MaxOffers int

	// Clock stamps cache entries and responses; nil means the system clock
	Clock timeutil.Clock

	// Logger receives operational events; nil disables logging
	Logger *logger.Logger
}

type offerRankingUseCase struct {
	cache     domain.OfferCache
	clock     timeutil.Clock
	log       *logger.Logger
	maxOffers int
}

// NewOfferRankingUseCase creates a use case backed by the given cache.
// If config is nil, defaults are used.
func NewOfferRankingUseCase(cache domain.OfferCache, config *Config) OfferRankingUseCase {
	uc := &offerRankingUseCase{
		cache:     cache,
		clock:     timeutil.NewRealClock(),
		log:       logger.Nop(),
		maxOffers: DefaultMaxOffers,
	}
	if config != nil {
		if config.MaxOffers > 0 {
			uc.maxOffers = config.MaxOffers
		}
		if config.Clock != nil {
			uc.clock = config.Clock
		}
		if config.Logger != nil {
			uc.log = config.Logger
		}
	}
	return uc
}

// Rank implements OfferRankingUseCase.Rank.
func (uc *offerRankingUseCase) Rank(ctx context.Context, req RankRequest) (*domain.RankResponse, error) {
	key := req.Search.Normalize()
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if err := req.Preferences.Validate(); err != nil {
		return nil, err
	}
	if len(req.Offers) > uc.maxOffers {
		return nil, domain.WrapInvalidRequest("at most %d offers per request, got %d", uc.maxOffers, len(req.Offers))
	}
	for i := range req.Offers {
		if err := req.Offers[i].Validate(); err != nil {
			return nil, domain.NewOfferError(i, req.Offers[i].ID, err)
		}
	}

	// A failed cache write only costs the ability to re-rank later.
	entry := domain.CachedSearch{Key: key, Offers: req.Offers, StoredAt: uc.clock.Now()}
	if err := uc.cache.Set(ctx, entry); err != nil {
		uc.log.WithSearch(key.String()).Warn().Err(err).Msg("Failed to cache offers")
	}

	return uc.rank(key, req.Offers, req.Preferences, req.Options, false)
}

// Rerank implements OfferRankingUseCase.Rerank.
func (uc *offerRankingUseCase) Rerank(ctx context.Context, key domain.SearchKey, prefs domain.PreferenceSet, opts RankOptions) (*domain.RankResponse, error) {
	key = key.Normalize()
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	entry, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load cached search %s: %w", key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSearchNotFound, key)
	}

	uc.log.WithSearch(key.String()).Debug().
		Time("stored_at", entry.StoredAt).
		Int("offers", len(entry.Offers)).
		Msg("Re-ranking cached search")

	return uc.rank(key, entry.Offers, prefs, opts, true)
}

// rank runs filter -> score -> best -> reward -> sort over a validated batch.
func (uc *offerRankingUseCase) rank(key domain.SearchKey, offers []domain.FlightOffer, prefs domain.PreferenceSet, opts RankOptions, fromCache bool) (*domain.RankResponse, error) {
	start := time.Now()

	filtered := ApplyFilters(offers, opts.Filters)
	if len(filtered) == 0 {
		return nil, domain.ErrEmptyOfferSet
	}

	scored, err := ScoreOffers(filtered, prefs)
	if err != nil {
		return nil, err
	}
	bi := bestIndex(scored)
	best := scored[bi]

	rows := make([]domain.RankedOffer, len(scored))
	for i, s := range scored {
		rows[i] = domain.RankedOffer{
			Score:  s.Score,
			Reward: CalculateReward(s.Offer.Price, best.Offer.Price, prefs.RewardAdjustmentFactor),
			IsBest: i == bi,
			Offer:  s.Offer,
		}
	}
	assignRanks(rows)

	sortBy := opts.SortBy
	if !sortBy.IsValid() {
		sortBy = domain.SortByScore
	}
	sorted := SortRankedOffers(rows, sortBy)

	uc.log.WithSearch(key.String()).Info().
		Int("offers", len(offers)).
		Int("ranked", len(sorted)).
		Str("best_offer", best.Offer.ID).
		Float64("best_score", best.Score).
		Bool("from_cache", fromCache).
		Msg("Offers ranked")

	return &domain.RankResponse{
		Search:      key,
		Preferences: prefs,
		Best:        best,
		Offers:      sorted,
		Metadata: domain.RankMetadata{
			TotalOffers:  len(offers),
			RankedOffers: len(sorted),
			SortBy:       sortBy,
			FromCache:    fromCache,
			RankedAt:     uc.clock.Now(),
			DurationMs:   time.Since(start).Milliseconds(),
		},
	}, nil
}

// Ensure offerRankingUseCase implements OfferRankingUseCase at compile time.
var _ OfferRankingUseCase = (*offerRankingUseCase)(nil)
