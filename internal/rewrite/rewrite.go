// Package rewrite transforms HLS playlist text so segment references route
// back through the relay.
//
// This is deliberately not an HLS parser: tags and anything else the relay
// does not recognize pass through untouched, and only lines referencing a
// .ts segment are rewritten. Master playlists (which reference child
// playlists, not segments) are therefore returned as-is.
package rewrite

import (
	"net/url"
	"strings"

	"hls-relay-go/internal/model"
)

// segmentProxyPath is the relay route that rewritten references point at.
const segmentProxyPath = "/ts-proxy"

// absoluteSchemes are the URI scheme prefixes recognized as already-absolute
// segment references.
var absoluteSchemes = []string{"http://", "https://"}

// BaseURL returns the playlist URL truncated after its final "/". Relative
// segment references resolve against this.
func BaseURL(playlistURL string) string {
	idx := strings.LastIndex(playlistURL, "/")
	if idx < 0 {
		return playlistURL
	}
	return playlistURL[:idx+1]
}

// Manifest rewrites playlist text line by line. A line is a segment
// reference iff it does not start with "#" and contains ".ts"; such lines
// are replaced with an absolute proxy link. All other lines, comment or
// otherwise, are returned byte-identical.
func Manifest(playlist string, rc model.RewriteContext) string {
	lines := strings.Split(playlist, "\n")

	for i, line := range lines {
		if strings.HasPrefix(line, "#") || !strings.Contains(line, ".ts") {
			continue
		}
		lines[i] = proxyLink(strings.TrimSpace(line), rc)
	}

	return strings.Join(lines, "\n")
}

// proxyLink resolves ref against the playlist base and wraps it in a
// /ts-proxy URL on the relay's own origin. An already-absolute ref enters
// the link unchanged except for percent-encoding, so re-running the rewrite
// never double-prefixes the base URL.
func proxyLink(ref string, rc model.RewriteContext) string {
	resolved := ref
	if !isAbsolute(ref) {
		resolved = rc.BaseURL + ref
	}

	link := rc.RelayOrigin + segmentProxyPath + "?url=" + url.QueryEscape(resolved)
	if rc.RawHeaderParam != "" {
		link += "&headers=" + rc.RawHeaderParam
	}
	return link
}

func isAbsolute(ref string) bool {
	for _, scheme := range absoluteSchemes {
		if strings.HasPrefix(ref, scheme) {
			return true
		}
	}
	return false
}
