package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the health check and the v1 offer routes.
// Middleware given here applies to the v1 group only.
func RegisterRoutes(e *echo.Echo, h *OfferHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	offers := api.Group("/offers")
	offers.POST("/rank", h.RankOffers)
	offers.POST("/rank/amadeus", h.RankAmadeusOffers)
	offers.POST("/rerank", h.RerankOffers)
}
