// Package model defines shared types for the relay.
package model

import (
	"io"
	"net/http"
)

// UpstreamResponse represents a raw upstream response whose body is still
// owned by the caller.
type UpstreamResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       io.ReadCloser
}

// SegmentStream carries a media segment body together with the headers the
// relay mirrors onto its own response. ContentType is always set (a default
// is applied when upstream omits it); ContentLength and ContentRange are
// empty when upstream did not send them.
type SegmentStream struct {
	ContentType   string
	ContentLength string
	ContentRange  string
	Body          io.ReadCloser
}

// RewriteContext holds the values needed to rewrite one manifest. It lives
// for a single request.
type RewriteContext struct {
	// BaseURL is the playlist URL truncated after its final "/"; relative
	// segment references are resolved against it.
	BaseURL string
	// RawHeaderParam is the still-encoded headers query parameter from the
	// inbound request, forwarded verbatim into segment proxy links.
	RawHeaderParam string
	// RelayOrigin is scheme://host of this service as seen by the client.
	RelayOrigin string
}
