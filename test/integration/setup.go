// Package integration runs the HTTP handlers, use case and caches together.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-offer-ranker/internal/adapter/cache"
	httpAdapter "github.com/flight-search/flight-offer-ranker/internal/adapter/http"
	"github.com/flight-search/flight-offer-ranker/internal/adapter/http/middleware"
	"github.com/flight-search/flight-offer-ranker/internal/adapter/http/response"
	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-offer-ranker/internal/usecase"
)

// TestServer wraps an Echo instance wired like cmd/server.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.OfferHandler
	Cache   domain.OfferCache
}

// ServerOptions tweaks the wiring of a TestServer.
type ServerOptions struct {
	// RewardFactor is the default reward factor; zero means 1
	RewardFactor float64

	// MaxOffers caps offers per request; zero means the use case default
	MaxOffers int

	// Limiter enables rate limiting on the v1 routes
	Limiter *middleware.ClientLimiter
}

// NewTestServer creates a server backed by offerCache.
func NewTestServer(offerCache domain.OfferCache) *TestServer {
	return NewTestServerWithOptions(offerCache, ServerOptions{})
}

// NewTestServerWithOptions creates a server backed by offerCache.
func NewTestServerWithOptions(offerCache domain.OfferCache, opts ServerOptions) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	log := logger.Nop()
	middleware.Setup(e, log)

	factor := opts.RewardFactor
	if factor == 0 {
		factor = 1
	}

	uc := usecase.NewOfferRankingUseCase(offerCache, &usecase.Config{
		MaxOffers: opts.MaxOffers,
		Logger:    log,
	})
	handler := httpAdapter.NewOfferHandler(uc, httpAdapter.HandlerConfig{
		DefaultRewardFactor: factor,
		ServiceName:         "flight-offer-ranker",
		CacheBackend:        "memory",
		Logger:              log,
	})

	var mw []echo.MiddlewareFunc
	if opts.Limiter != nil {
		mw = append(mw, middleware.RateLimit(opts.Limiter))
	}
	httpAdapter.RegisterRoutes(e, handler, mw...)

	return &TestServer{Echo: e, Handler: handler, Cache: offerCache}
}

// NewMemoryServer creates a server backed by a fresh MemoryCache.
func NewMemoryServer() *TestServer {
	return NewTestServer(cache.NewMemoryCache(cache.DefaultTTL, timeutil.NewRealClock()))
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	RawBody []byte
	Context context.Context
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	body := req.RawBody
	if body == nil && req.Body != nil {
		body, _ = json.Marshal(req.Body)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if req.Context != nil {
		httpReq = httpReq.WithContext(req.Context)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Rank posts body to /api/v1/offers/rank.
func (ts *TestServer) Rank(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/offers/rank", Body: body})
}

// RankAmadeus posts body to /api/v1/offers/rank/amadeus.
func (ts *TestServer) RankAmadeus(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/offers/rank/amadeus", Body: body})
}

// Rerank posts body to /api/v1/offers/rerank.
func (ts *TestServer) Rerank(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/offers/rerank", Body: body})
}

// Health calls GET /health.
func (ts *TestServer) Health() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/health"})
}

// ParseRankResponse decodes a successful ranking body.
func (r *Response) ParseRankResponse() (*httpAdapter.RankResponseDTO, error) {
	var resp httpAdapter.RankResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError decodes an error body.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// ScenarioSearch is the search every scenario body targets.
func ScenarioSearch() httpAdapter.SearchDTO {
	return httpAdapter.SearchDTO{Origin: "LGA", Destination: "SFO", DepartureDate: "2025-12-15"}
}

// ScenarioOffers returns offer A (400, direct, 08:00, 5h) and offer B
// (300, one stop in ORD, 14:00, 7h). Under the default preferences A
// scores 1750 and B scores 2370.
func ScenarioOffers() []httpAdapter.OfferDTO {
	return []httpAdapter.OfferDTO{
		{
			ID:       "A",
			Price:    400,
			Currency: "USD",
			Segments: []httpAdapter.SegmentDTO{
				{Carrier: "UA", FlightNumber: "UA512", Cabin: "ECONOMY", From: "LGA", To: "SFO",
					DepartureTime: "2025-12-15T08:00:00", ArrivalTime: "2025-12-15T13:00:00"},
			},
		},
		{
			ID:       "B",
			Price:    300,
			Currency: "USD",
			Segments: []httpAdapter.SegmentDTO{
				{Carrier: "AA", FlightNumber: "AA321", Cabin: "ECONOMY", From: "LGA", To: "ORD",
					DepartureTime: "2025-12-15T14:00:00", ArrivalTime: "2025-12-15T16:00:00"},
				{Carrier: "AA", FlightNumber: "AA1150", Cabin: "ECONOMY", From: "ORD", To: "SFO",
					DepartureTime: "2025-12-15T18:00:00", ArrivalTime: "2025-12-15T21:00:00"},
			},
		},
	}
}

// ScenarioRankRequest returns a rank body for the scenario with default preferences.
func ScenarioRankRequest() httpAdapter.RankOffersRequest {
	return httpAdapter.RankOffersRequest{
		Search: ScenarioSearch(),
		Offers: ScenarioOffers(),
	}
}
