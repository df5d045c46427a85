// Package service implements the manifest-rewriting and segment-relay logic.
package service

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidTarget is returned when the url parameter does not decode to a
// syntactically valid absolute URI. No upstream fetch is attempted.
var ErrInvalidTarget = errors.New("url parameter is not a valid absolute URL")

// UpstreamStatusError reports a non-2xx upstream response. Status keeps the
// full status line text (e.g. "404 Not Found") so error details stay useful.
type UpstreamStatusError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream responded with status %s", e.Status)
}

// decodeTarget percent-decodes a raw url query parameter and validates that
// the result is an absolute http(s) URL.
func decodeTarget(raw string) (string, error) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTarget, err)
	}

	u, err := url.Parse(decoded)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTarget, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", ErrInvalidTarget
	}
	return decoded, nil
}
