package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// errMissingURL is the exact body sent when the url parameter is absent.
var errMissingURL = map[string]string{"error": "URL parameter is required"}

// relayError logs err and sends the single JSON error shape every failed
// relay request produces. All upstream-side failures (bad status, timeout,
// DNS, connection reset) and decode failures land here as a 500; nothing is
// retried.
func relayError(c echo.Context, logger *slog.Logger, summary string, err error) error {
	logger.Error("relay error",
		"err", err,
		"path", c.Request().URL.Path,
	)

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error":   summary,
		"details": err.Error(),
	})
}
