package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"hls-relay-go/internal/client"
	"hls-relay-go/internal/headers"
	"hls-relay-go/internal/model"
	"hls-relay-go/internal/rewrite"
)

// ManifestService fetches HLS playlists and rewrites their segment
// references into relay-routed links.
type ManifestService struct {
	client *client.UpstreamClient
	logger *slog.Logger
}

// NewManifestService creates a ManifestService.
func NewManifestService(c *client.UpstreamClient, logger *slog.Logger) *ManifestService {
	return &ManifestService{
		client: c,
		logger: logger.With("component", "manifest_service"),
	}
}

// Relay fetches the playlist at the (still percent-encoded) target URL and
// returns its text with every segment reference rewritten to point at the
// relay's /ts-proxy route on relayOrigin. rawHeaderParam is the inbound
// headers query parameter in its encoded form; it is applied to the upstream
// fetch and forwarded verbatim into the rewritten links.
func (s *ManifestService) Relay(ctx context.Context, rawTarget, rawHeaderParam, relayOrigin string) (string, error) {
	target, err := decodeTarget(rawTarget)
	if err != nil {
		return "", err
	}

	hdr := headers.ForManifest(s.decodeOverrides(rawHeaderParam))

	resp, err := s.client.Get(ctx, target, hdr)
	if err != nil {
		return "", fmt.Errorf("fetch manifest: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	// Playlists are small text documents; reading the whole body so it can
	// be rewritten in memory is fine here, unlike segment bodies.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read manifest body: %w", err)
	}

	rc := model.RewriteContext{
		BaseURL:        rewrite.BaseURL(target),
		RawHeaderParam: rawHeaderParam,
		RelayOrigin:    relayOrigin,
	}
	return rewrite.Manifest(string(body), rc), nil
}

// decodeOverrides parses the headers parameter, treating any failure as "no
// overrides". Malformed input is a caller bug the relay tolerates: the fetch
// proceeds with defaults only.
func (s *ManifestService) decodeOverrides(rawHeaderParam string) map[string]string {
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
