package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS returns a middleware that marks every response as usable from any
// origin. The relay exists so browser players can fetch cross-origin
// streams, so the policy is deliberately wide open. Preflight OPTIONS
// requests are answered here with an empty 200 before routing.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization, Referer, User-Agent, Range")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}

			return next(c)
		}
	}
}
