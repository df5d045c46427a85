package headers

import (
	"encoding/json"
	"net/url"
	"reflect"
	"testing"
)

func TestDecode_Valid(t *testing.T) {
	raw := url.QueryEscape(`{"Referer":"https://player.example/","User-Agent":"custom-agent"}`)

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := map[string]string{
		"Referer":    "https://player.example/",
		"User-Agent": "custom-agent",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	// Decoding the headers parameter and re-encoding the result must
	// reproduce the original mapping.
	orig := map[string]string{
		"Referer": "https://player.example/watch?id=1&t=2",
		"Cookie":  "session=abc; theme=dark",
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := Decode(url.QueryEscape(string(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(decoded, orig) {
		t.Errorf("round trip: got %v, want %v", decoded, orig)
	}

	reencoded, err := json.Marshal(decoded)
	if err != nil {
		t.Fatal(err)
	}
	var final map[string]string
	if err := json.Unmarshal(reencoded, &final); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(final, orig) {
		t.Errorf("re-encode: got %v, want %v", final, orig)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", url.QueryEscape("just a string")},
		{"truncated json", url.QueryEscape(`{"Referer":`)},
		{"json array", url.QueryEscape(`["a","b"]`)},
		{"bad percent encoding", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.raw); err == nil {
				t.Errorf("Decode(%q) expected error, got nil", tt.raw)
			}
		})
	}
}

func TestForManifest_Defaults(t *testing.T) {
	h := ForManifest(nil)

	if h.Get("User-Agent") == "" {
		t.Error("expected a default User-Agent")
	}
	if h.Get("Accept") != "*/*" {
		t.Errorf("Accept = %q, want %q", h.Get("Accept"), "*/*")
	}
	if h.Get("Connection") != "keep-alive" {
		t.Errorf("Connection = %q, want %q", h.Get("Connection"), "keep-alive")
	}
	if h.Get("Range") != "" {
		t.Error("manifest header set must not carry a Range header")
	}
}

func TestForManifest_OverrideWins(t *testing.T) {
	h := ForManifest(map[string]string{
		"User-Agent": "custom-agent",
		"Referer":    "https://player.example/",
	})

	if got := h.Get("User-Agent"); got != "custom-agent" {
		t.Errorf("User-Agent = %q, want %q", got, "custom-agent")
	}
	if got := h.Get("Referer"); got != "https://player.example/" {
		t.Errorf("Referer = %q, want %q", got, "https://player.example/")
	}
	// Keys absent from the override set stay at default.
	if got := h.Get("Accept"); got != "*/*" {
		t.Errorf("Accept = %q, want %q", got, "*/*")
	}
}

func TestForSegment_RangeForwarded(t *testing.T) {
	h := ForSegment(nil, "bytes=0-999")

	if got := h.Get("Range"); got != "bytes=0-999" {
		t.Errorf("Range = %q, want %q", got, "bytes=0-999")
	}
}

func TestForSegment_NoRange(t *testing.T) {
	h := ForSegment(nil, "")
	if h.Get("Range") != "" {
		t.Errorf("Range = %q, want empty", h.Get("Range"))
	}
}

func TestForSegment_RangeOverride(t *testing.T) {
	h := ForSegment(map[string]string{"Range": "bytes=500-"}, "bytes=0-999")
	if got := h.Get("Range"); got != "bytes=500-" {
		t.Errorf("Range = %q, want override %q", got, "bytes=500-")
	}
}
