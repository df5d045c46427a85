package service

import (
	"context"
	"fmt"
	"log/slog"

	"hls-relay-go/internal/client"
	"hls-relay-go/internal/headers"
	"hls-relay-go/internal/model"
)

// defaultSegmentContentType is used when upstream omits Content-Type;
// MPEG-TS is what HLS segments almost always are.
const defaultSegmentContentType = "video/mp2t"

// SegmentService fetches media segments on behalf of clients, preserving
// byte-range semantics.
type SegmentService struct {
	client *client.UpstreamClient
	logger *slog.Logger
}

// NewSegmentService creates a SegmentService.
func NewSegmentService(c *client.UpstreamClient, logger *slog.Logger) *SegmentService {
	return &SegmentService{
		client: c,
		logger: logger.With("component", "segment_service"),
	}
}

// Relay fetches the segment at the (still percent-encoded) target URL and
// returns a stream handle. inboundRange, when non-empty, is forwarded
// upstream verbatim so partial-content responses survive end to end. The
// caller owns the returned body and must close it.
func (s *SegmentService) Relay(ctx context.Context, rawTarget, rawHeaderParam, inboundRange string) (*model.SegmentStream, error) {
	target, err := decodeTarget(rawTarget)
	if err != nil {
		return nil, err
	}

	hdr := headers.ForSegment(s.decodeOverrides(rawHeaderParam), inboundRange)

	resp, err := s.client.Get(ctx, target, hdr)
	if err != nil {
		return nil, fmt.Errorf("fetch segment: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &UpstreamStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultSegmentContentType
	}

	return &model.SegmentStream{
		ContentType:   contentType,
		ContentLength: resp.Header.Get("Content-Length"),
		ContentRange:  resp.Header.Get("Content-Range"),
		Body:          resp.Body,
	}, nil
}

func (s *SegmentService) decodeOverrides(rawHeaderParam string) map[string]string {
	if rawHeaderParam == "" {
		return nil
	}
	overrides, err := headers.Decode(rawHeaderParam)
	if err != nil {
		s.logger.Warn("ignoring malformed headers param", "err", err)
		return nil
	}
	return overrides
}
