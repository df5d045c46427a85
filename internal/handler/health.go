package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Version is a string type for dependency injection of the build version.
type Version string

// HealthHandler serves the index and health endpoints.
type HealthHandler struct {
	version Version
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(v Version) *HealthHandler {
	return &HealthHandler{version: v}
}

// Index describes the relay's endpoints for anyone poking at the root.
func (h *HealthHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "HLS relay proxy",
		"usage": map[string]string{
			"manifest": "/m3u8-proxy?url=<encoded playlist URL>&headers=<encoded JSON header map>",
			"segment":  "/ts-proxy?url=<encoded segment URL>&headers=<encoded JSON header map>",
		},
	})
}

// Health returns a liveness response.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   string(h.version),
	})
}
