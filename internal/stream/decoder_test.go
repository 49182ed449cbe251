package stream

import "testing"

func TestDecodeChunk_PlainJSONString(t *testing.T) {
	delta, ok := DecodeChunk([]byte(`"Hello"`))
	if !ok || delta != "Hello" {
		t.Errorf("expected (Hello, true), got (%q, %v)", delta, ok)
	}
}

func TestDecodeChunk_ObjectWithResponse(t *testing.T) {
	delta, ok := DecodeChunk([]byte(`{"response":"Hi there"}`))
	if !ok || delta != "Hi there" {
		t.Errorf("expected (Hi there, true), got (%q, %v)", delta, ok)
	}
}

func TestDecodeChunk_DoneSentinelDiscarded(t *testing.T) {
	if _, ok := DecodeChunk([]byte("data: [DONE]\n\n")); ok {
		t.Error("expected [DONE] sentinel to be discarded")
	}
}

func TestDecodeChunk_SSEFramedResponse(t *testing.T) {
	delta, ok := DecodeChunk([]byte("data: {\"response\":\"chunk\"}\n\n"))
	if !ok || delta != "chunk" {
		t.Errorf("expected (chunk, true), got (%q, %v)", delta, ok)
	}
}

func TestDecodeChunk_SSEFramedText(t *testing.T) {
	delta, ok := DecodeChunk([]byte(`data: {"text":"fallback"}`))
	if !ok || delta != "fallback" {
		t.Errorf("expected (fallback, true), got (%q, %v)", delta, ok)
	}
}

func TestDecodeChunk_PrefersResponseOverText(t *testing.T) {
	delta, ok := DecodeChunk([]byte(`data: {"response":"r","text":"t"}`))
	if !ok || delta != "r" {
		t.Errorf("expected response field preferred, got (%q, %v)", delta, ok)
	}
}

func TestDecodeChunk_MalformedPayloadDiscarded(t *testing.T) {
	cases := [][]byte{
		[]byte("data: not json at all"),
		[]byte("event: ping"),
		[]byte(`{"unrelated":"field"}`),
		[]byte(""),
		[]byte("   \n  "),
	}
	for _, c := range cases {
		if delta, ok := DecodeChunk(c); ok {
			t.Errorf("expected %q to be discarded, got delta %q", c, delta)
		}
	}
}

func TestDecodeChunk_EmptyDeltaNotForwarded(t *testing.T) {
	if _, ok := DecodeChunk([]byte(`data: {"response":""}`)); ok {
		t.Error("expected empty delta to be dropped")
	}
}
