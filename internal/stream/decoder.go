// Package stream decodes the AI gateway's chunk protocol and re-frames it
// into the normalized event stream the browser consumes.
package stream

import (
	"bytes"
	"encoding/json"
	"strings"
)

const doneSentinel = "data: [DONE]"

// chunkPayload covers the JSON shapes a vendor chunk may carry.
type chunkPayload struct {
	Response *string `json:"response"`
	Text     *string `json:"text"`
}

// DecodeChunk extracts the text delta from one vendor chunk. The vendor may
// send a JSON-encoded plain string, a JSON object with a "response" field, or
// an SSE-framed line whose payload carries "response" or "text" (preferred in
// that order). The [DONE] sentinel and anything undecodable yield ok=false;
// decode failures are never surfaced, the chunk is simply skipped.
func DecodeChunk(frame []byte) (delta string, ok bool) {
	trimmed := bytes.TrimSpace(frame)
	if len(trimmed) == 0 {
		return "", false
	}

	// Plain JSON string chunk.
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, s != ""
	}

	// Bare object exposing "response".
	if trimmed[0] == '{' {
		var p chunkPayload
		if err := json.Unmarshal(trimmed, &p); err == nil && p.Response != nil {
			return *p.Response, *p.Response != ""
		}
		return "", false
	}

	text := string(trimmed)
	if text == doneSentinel {
		return "", false
	}

	if rest, found := strings.CutPrefix(text, "data: "); found {
		var p chunkPayload
		if err := json.Unmarshal([]byte(rest), &p); err != nil {
			return "", false
		}
		if p.Response != nil {
			return *p.Response, *p.Response != ""
		}
		if p.Text != nil {
			return *p.Text, *p.Text != ""
		}
	}

	return "", false
}
