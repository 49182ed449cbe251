package gateway

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/unleashai/inquiries-backend/internal/entity"
	"go.uber.org/zap"
)

const mockDimensions = 768

// MockConnector is a local stand-in for the AI gateway used when
// ENABLE_MOCKS is set.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// Embed returns a deterministic vector derived from the text length.
func (m *MockConnector) Embed(ctx context.Context, text string) ([]float32, error) {
	ctxzap.Info(ctx, "[MOCK] embedding text", zap.Int("text_length", len(text)))

	vec := make([]float32, mockDimensions)
	for i := range vec {
		vec[i] = float32((len(text)+i)%97) / 97.0
	}
	return vec, nil
}

// Generate echoes the last user message back, chunked over the vendor SSE
// wire format when streaming so the re-framer path is exercised end to end.
func (m *MockConnector) Generate(ctx context.Context, messages []entity.ChatMessage, stream bool) (*entity.GenerateResult, error) {
	ctxzap.Info(ctx, "[MOCK] generating response",
		zap.Int("message_count", len(messages)),
		zap.Bool("stream", stream),
	)

	lastUser := ""
	for _, msg := range messages {
		if msg.Role == entity.RoleUser {
			lastUser = msg.Content
		}
	}
	reply := "Thank you for sharing. It sounds like you said: " + lastUser

	if !stream {
		return &entity.GenerateResult{Response: reply}, nil
	}

	var b strings.Builder
	for _, word := range strings.SplitAfter(reply, " ") {
		fmt.Fprintf(&b, "data: {\"response\": %q}\n\n", word)
	}
	b.WriteString("data: [DONE]\n\n")

	return &entity.GenerateResult{Stream: io.NopCloser(strings.NewReader(b.String()))}, nil
}
