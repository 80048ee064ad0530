// Package main is the entry point for the flight offer ranking service.
//
//	@title						Flight Offer Ranking API
//	@version					1.0.0
//	@description				Scores flight offers against traveler preferences, selects the best offer and computes a reward for every alternative.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-offer-ranker/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-offer-ranker/docs"

	"github.com/flight-search/flight-offer-ranker/internal/adapter/cache"
	offerhttp "github.com/flight-search/flight-offer-ranker/internal/adapter/http"
	"github.com/flight-search/flight-offer-ranker/internal/adapter/http/middleware"
	"github.com/flight-search/flight-offer-ranker/internal/config"
	"github.com/flight-search/flight-offer-ranker/internal/domain"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-offer-ranker/internal/usecase"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("cache", cfg.Cache.Backend).
		Msg("Configuration loaded")

	offerCache, err := newCache(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cache")
	}
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	if mc, ok := offerCache.(*cache.MemoryCache); ok {
		go mc.RunJanitor(janitorCtx, cfg.Cache.TTL)
	}
	defer func() {
		if err := offerCache.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing cache")
		}
	}()

	e := newServer(cfg, log, offerCache)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, cfg, log)
}

// newCache builds the search cache selected by CACHE_BACKEND.
func newCache(cfg *config.Config) (domain.OfferCache, error) {
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Cache.RedisDialTimeout)
		defer cancel()
		rcfg := cache.DefaultRedisConfig()
		rcfg.Addr = cfg.Cache.RedisAddr
		rcfg.Password = cfg.Cache.RedisPassword
		rcfg.DB = cfg.Cache.RedisDB
		rcfg.TTL = cfg.Cache.TTL
		if cfg.Cache.RedisDialTimeout > 0 {
			rcfg.DialTimeout = cfg.Cache.RedisDialTimeout
		}
		rc, err := cache.NewRedisCache(ctx, rcfg)
		if err != nil {
			return nil, err
		}
		return rc, nil
	case config.CacheNone:
		return cache.NewNoOpCache(), nil
	default:
		return cache.NewMemoryCache(cfg.Cache.TTL, timeutil.NewRealClock()), nil
	}
}

// newServer wires the use case, handler, middleware and routes into an echo instance.
func newServer(cfg *config.Config, log *logger.Logger, offerCache domain.OfferCache) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))

	uc := usecase.NewOfferRankingUseCase(offerCache, &usecase.Config{
		MaxOffers: cfg.Ranking.MaxOffers,
		Logger:    log.WithComponent("ranking"),
	})
	handler := offerhttp.NewOfferHandler(uc, offerhttp.HandlerConfig{
		DefaultRewardFactor: cfg.Ranking.DefaultRewardFactor,
		ServiceName:         cfg.Logging.ServiceName,
		CacheBackend:        cfg.Cache.Backend,
		Logger:              log.WithComponent("http"),
	})

	var apiMiddleware []echo.MiddlewareFunc
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewClientLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		})
		apiMiddleware = append(apiMiddleware, middleware.RateLimit(limiter))
	}
	offerhttp.RegisterRoutes(e, handler, apiMiddleware...)

	// Swagger is never served in production.
	if cfg.Server.EnableSwagger && !cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

// gracefulShutdown blocks until SIGINT or SIGTERM, then drains the server.
func gracefulShutdown(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
