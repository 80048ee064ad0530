package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func writeError(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// InvalidRequestBody writes a 400 for bodies that cannot be decoded.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 with per-field details.
func ValidationError(c echo.Context, details map[string]string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 with a single message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// NoResults writes a 404 for a search left with nothing to rank.
func NoResults(c echo.Context) error {
	return writeError(c, http.StatusNotFound, CodeNoResults, MsgNoResults, nil)
}

// SearchNotFound writes a 404 for a re-rank of an unknown or expired search.
func SearchNotFound(c echo.Context) error {
	return writeError(c, http.StatusNotFound, CodeSearchNotFound, MsgSearchNotFound, nil)
}

// TooManyRequests writes a 429.
func TooManyRequests(c echo.Context) error {
	return writeError(c, http.StatusTooManyRequests, CodeRateLimited, MsgRateLimited, nil)
}

// GatewayTimeout writes a 504.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// InternalServerError writes a 500 without leaking the cause.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
