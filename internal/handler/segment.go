package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"hls-relay-go/internal/metrics"
	"hls-relay-go/internal/service"
)

// SegmentHandler serves /ts-proxy: it streams one media segment from
// upstream to the client, preserving range semantics.
type SegmentHandler struct {
	service *service.SegmentService
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewSegmentHandler creates a SegmentHandler. The metrics parameter is
// optional; pass nil to skip byte accounting.
func NewSegmentHandler(svc *service.SegmentService, logger *slog.Logger, m *metrics.Metrics) *SegmentHandler {
	return &SegmentHandler{
		service: svc,
		logger:  logger.With("component", "segment_handler"),
		metrics: m,
	}
}

// Handle relays one segment request.
func (h *SegmentHandler) Handle(c echo.Context) error {
	req := c.Request()
	rawQuery := req.URL.RawQuery

	rawTarget := rawQueryValue(rawQuery, "url")
	if rawTarget == "" {
		return c.JSON(http.StatusBadRequest, errMissingURL)
	}
	rawHeaderParam := rawQueryValue(rawQuery, "headers")

	stream, err := h.service.Relay(req.Context(), rawTarget, rawHeaderParam, req.Header.Get("Range"))
	if err != nil {
		return relayError(c, h.logger, "Failed to fetch segment", err)
	}
	defer func() { _ = stream.Body.Close() }()

	hdr := c.Response().Header()
	hdr.Set("Content-Type", stream.ContentType)
	hdr.Set("Accept-Ranges", "bytes")
	hdr.Set("Cache-Control", "public, max-age=3600")
	if stream.ContentLength != "" {
		hdr.Set("Content-Length", stream.ContentLength)
	}

	status := http.StatusOK
	if stream.ContentRange != "" {
		hdr.Set("Content-Range", stream.ContentRange)
		status = http.StatusPartialContent
	}

	c.Response().WriteHeader(status)

	// Stream the upstream body directly to the client. If io.Copy fails
	// mid-stream (client disconnect, upstream reset), the status line has
	// already been sent; the client just sees a truncated body. We log it
	// for observability and move on.
	n, err := io.Copy(c.Response(), stream.Body)
	if h.metrics != nil {
		h.metrics.SegmentBytes.Add(float64(n))
	}
	if err != nil {
		h.logger.Error("streaming segment body",
			"err", err,
			"bytes_sent", n,
		)
	}

	return nil
}
