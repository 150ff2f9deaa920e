package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SharedSecret guards scheduler-invoked endpoints with a static bearer secret.
// The cron runner sends it in the X-Cron-Secret header; schedulers that cannot
// set headers may pass it as the ?secret= query parameter instead.
func SharedSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
					"error":   "not_configured",
					"message": "Endpoint is disabled: no shared secret configured",
				})
			}

			provided := c.Request().Header.Get("X-Cron-Secret")
			if provided == "" {
				provided = c.QueryParam("secret")
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "invalid_secret",
					"message": "Invalid or missing shared secret",
				})
			}

			return next(c)
		}
	}
}
