package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-offer-ranker/internal/adapter/http/response"
	"github.com/flight-search/flight-offer-ranker/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-ranker/internal/usecase"
)

// HandlerConfig holds the transport-level settings of OfferHandler.
type HandlerConfig struct {
	// DefaultRewardFactor is used when a request omits rewardAdjustmentFactor
	DefaultRewardFactor float64

	// ServiceName and CacheBackend are reported by the health endpoint
	ServiceName  string
	CacheBackend string

	Logger *logger.Logger
}

// OfferHandler handles the offer ranking endpoints.
type OfferHandler struct {
	useCase usecase.OfferRankingUseCase
	cfg     HandlerConfig
	log     *logger.Logger
}

// NewOfferHandler creates an OfferHandler.
func NewOfferHandler(uc usecase.OfferRankingUseCase, cfg HandlerConfig) *OfferHandler {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	if cfg.DefaultRewardFactor < 0 || cfg.DefaultRewardFactor > 1 {
		cfg.DefaultRewardFactor = 1
	}
	return &OfferHandler{useCase: uc, cfg: cfg, log: log}
}

// RankOffers handles POST /api/v1/offers/rank
//
// @Summary Rank flight offers
// @Description Score normalized offers against a preference set, pick the best one and compute rewards
// @Tags offers
// @Accept json
// @Produce json
// @Param request body RankOffersRequest true "Offers and preferences"
// @Success 200 {object} RankResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No offers left to rank"
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Router /api/v1/offers/rank [post]
func (h *OfferHandler) RankOffers(c echo.Context) error {
	var req RankOffersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers, err := ToFlightOffers(req.Offers)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.rank(c, usecase.RankRequest{
		Search:      ToSearchKey(req.Search),
		Offers:      offers,
		Preferences: ToPreferences(req.Preferences, h.cfg.DefaultRewardFactor),
		Options:     ToRankOptions(req.SortBy, req.Filters),
	})
}

// RankAmadeusOffers handles POST /api/v1/offers/rank/amadeus
//
// @Summary Rank Amadeus flight offers
// @Description Normalize an Amadeus flight-offers-search payload and rank it
// @Tags offers
// @Accept json
// @Produce json
// @Param request body RankAmadeusRequest true "Amadeus payload and preferences"
// @Success 200 {object} RankResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No offers left to rank"
// @Router /api/v1/offers/rank/amadeus [post]
func (h *OfferHandler) RankAmadeusOffers(c echo.Context) error {
	var req RankAmadeusRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	raw, err := amadeus.Decode(req.Data)
	if err != nil {
		return h.handleError(c, err)
	}
	offers, err := amadeus.Normalize(raw)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.rank(c, usecase.RankRequest{
		Search:      ToSearchKey(req.Search),
		Offers:      offers,
		Preferences: ToPreferences(req.Preferences, h.cfg.DefaultRewardFactor),
		Options:     ToRankOptions(req.SortBy, req.Filters),
	})
}

// RerankOffers handles POST /api/v1/offers/rerank
//
// @Summary Re-rank a previous search
// @Description Score the offers cached for a search again under new preferences
// @Tags offers
// @Accept json
// @Produce json
// @Param request body RerankRequest true "Search and new preferences"
// @Success 200 {object} RankResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Search not cached or nothing left to rank"
// @Router /api/v1/offers/rerank [post]
func (h *OfferHandler) RerankOffers(c echo.Context) error {
	var req RerankRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Rerank(
		c.Request().Context(),
		ToSearchKey(req.Search),
		ToPreferences(req.Preferences, h.cfg.DefaultRewardFactor),
		ToRankOptions(req.SortBy, req.Filters),
	)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToRankResponseDTO(result))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *OfferHandler) Health(c echo.Context) error {
	return response.Health(c, h.cfg.ServiceName, h.cfg.CacheBackend)
}

func (h *OfferHandler) rank(c echo.Context, req usecase.RankRequest) error {
	result, err := h.useCase.Rank(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToRankResponseDTO(result))
}

func (h *OfferHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *OfferHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsEmptyOfferSet(err):
		return response.NoResults(c)
	case domain.IsSearchNotFound(err):
		return response.SearchNotFound(c)
	case domain.IsValidationFailure(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return response.GatewayTimeout(c)
	}

	h.log.WithRequestID(requestID(c)).Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return response.InternalServerError(c)
}

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
