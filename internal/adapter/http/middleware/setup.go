package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-offer-ranker/internal/infrastructure/logger"
)

// Setup registers the global middleware in order: request id first so the
// logger and recovery can read it, then logging, then panic recovery.
func Setup(e *echo.Echo, log *logger.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
