package handler

import "strings"

// rawQueryValue returns the still percent-encoded value of key from a raw
// query string, or "" when absent. Echo's QueryParam decodes values; the
// relay needs the encoded form so the headers parameter can be forwarded
// verbatim into rewritten manifest links and the url parameter decoded
// exactly once.
func rawQueryValue(rawQuery, key string) string {
	for _, pair := range strings.Split(rawQuery, "&") {
		if v, ok := strings.CutPrefix(pair, key+"="); ok {
			return v
		}
	}
	return ""
}
