package errors

import (
	"log"
	"net/http"

	"github.com/jfmartinez/leadpilot/pkg/models"
	"github.com/labstack/echo/v4"
)

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested " + resource + " was not found.",
	})
}

// UpstreamError reports a failed provider call (mailbox, social, AI). The
// client is told it can retry.
func UpstreamError(c echo.Context, provider string, err error) error {
	log.Printf("[UPSTREAM ERROR] Provider: %s, Path: %s, Error: %v", provider, c.Request().URL.Path, err)

	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "upstream_unavailable",
		Message: "The " + provider + " service is unavailable. Please try again.",
	})
}

// NotConnectedError tells the user to reconnect the mailbox; a token refresh
// already failed, so retrying without reconnecting is pointless.
func NotConnectedError(c echo.Context) error {
	return c.JSON(http.StatusPreconditionFailed, models.ErrorResponse{
		Error:   "gmail_not_connected",
		Message: "Gmail is not connected or the session expired. Please reconnect Gmail.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// ConflictError returns a conflict error with a safe message
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message,
	})
}
