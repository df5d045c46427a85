package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires all route handlers onto the Echo instance.
// OPTIONS preflights are answered by the CORS middleware before routing.
func RegisterRoutes(e *echo.Echo, manifest *ManifestHandler, segment *SegmentHandler, health *HealthHandler) {
	e.GET("/", health.Index)
	e.GET("/health", health.Health)

	e.GET("/m3u8-proxy", manifest.Handle)
	e.GET("/ts-proxy", segment.Handle)
}
