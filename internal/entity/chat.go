package entity

import (
	"fmt"
	"io"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Validate() error {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRole, string(r))
	}
}

// ChatMessage is one turn of a conversation. Conversations are ordered and
// append-only; the client holds the full history and sends it on every request.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// StreamEvent is the normalized event forwarded to the browser, one SSE
// `data:` line per event.
type StreamEvent struct {
	Text string `json:"text"`
}

// GenerateResult is the outcome of a generation call. Exactly one of Stream
// and Response is set: Stream carries the raw vendor chunk stream to be
// re-framed, Response is the complete text of a non-streaming reply.
type GenerateResult struct {
	Stream   io.ReadCloser
	Response string
}
