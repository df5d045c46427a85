// Package headers builds outbound header sets for upstream fetches.
//
// Every upstream request carries a fixed browser-like default set; callers
// may override individual keys via a percent-encoded JSON mapping passed in
// the "headers" query parameter.
package headers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// defaultHeaders is the browser-like baseline applied to every upstream
// request. Override keys from the caller replace entries one by one.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "*/*",
	"Accept-Language": "en-US,en;q=0.9",
	"Accept-Encoding": "identity",
	"Connection":      "keep-alive",
}

// Decode parses a percent-encoded, JSON-serialized header mapping as sent in
// the "headers" query parameter. Callers treat a failure as "no overrides";
// the error exists only so they can log it.
func Decode(raw string) (map[string]string, error) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, fmt.Errorf("percent-decode headers param: %w", err)
	}

	overrides := make(map[string]string)
	if err := json.Unmarshal([]byte(decoded), &overrides); err != nil {
		return nil, fmt.Errorf("parse headers param: %w", err)
	}
	return overrides, nil
}

// ForManifest returns the header set for a playlist fetch: defaults overlaid
// with caller overrides. Override wins on key collision, with the key kept
// as supplied.
func ForManifest(overrides map[string]string) http.Header {
	return build(overrides, "")
}

// ForSegment returns the header set for a segment fetch. In addition to the
// manifest behavior it forwards the client's Range header so partial-content
// semantics survive end to end. An explicit Range override from the caller
// takes precedence.
func ForSegment(overrides map[string]string, inboundRange string) http.Header {
	return build(overrides, inboundRange)
}

func build(overrides map[string]string, inboundRange string) http.Header {
	h := make(http.Header, len(defaultHeaders)+len(overrides)+1)
	for k, v := range defaultHeaders {
		h.Set(k, v)
	}
	if inboundRange != "" {
		h.Set("Range", inboundRange)
	}
	for k, v := range overrides {
		// Drop the canonical default before assigning so the override's own
		// key casing is what goes on the wire.
		h.Del(k)
		h[k] = []string{v}
	}
	return h
}
