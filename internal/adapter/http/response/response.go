// Package response writes the JSON bodies returned by the ranking API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details maps offending fields to what is wrong with them
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeNoResults       = "no_results"
	CodeSearchNotFound  = "search_not_found"
	CodeRateLimited     = "rate_limited"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgNoResults          = "No flight offers left to rank"
	MsgSearchNotFound     = "No cached offers for this search; rank it first"
	MsgRateLimited        = "Too many requests"
	MsgTimeout            = "Request timed out"
	MsgInternalError      = "An unexpected error occurred"
)

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Cache   string `json:"cache,omitempty"`
}

// OK writes a 200 response.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Health writes the health check body.
func Health(c echo.Context, service, cache string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Service: service,
		Cache:   cache,
	})
}
