package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"hls-relay-go/internal/service"
)

const manifestContentType = "application/vnd.apple.mpegurl"

// ManifestHandler serves /m3u8-proxy: it fetches a playlist and returns it
// with segment references rewritten through the relay.
type ManifestHandler struct {
	service *service.ManifestService
	logger  *slog.Logger
}

// NewManifestHandler creates a ManifestHandler.
func NewManifestHandler(svc *service.ManifestService, logger *slog.Logger) *ManifestHandler {
	return &ManifestHandler{
		service: svc,
		logger:  logger.With("component", "manifest_handler"),
	}
}

// Handle relays one playlist request.
func (h *ManifestHandler) Handle(c echo.Context) error {
	rawQuery := c.Request().URL.RawQuery

	rawTarget := rawQueryValue(rawQuery, "url")
	if rawTarget == "" {
		return c.JSON(http.StatusBadRequest, errMissingURL)
	}
	rawHeaderParam := rawQueryValue(rawQuery, "headers")
	relayOrigin := c.Scheme() + "://" + c.Request().Host

	playlist, err := h.service.Relay(c.Request().Context(), rawTarget, rawHeaderParam, relayOrigin)
	if err != nil {
		return relayError(c, h.logger, "Failed to fetch manifest", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, manifestContentType, []byte(playlist))
}
