package chat

import (
	"context"

	"github.com/unleashai/inquiries-backend/internal/entity"
)

// GatewayConnector is the hosted AI gateway capability consumed by the chat flow.
type GatewayConnector interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Generate(ctx context.Context, messages []entity.ChatMessage, stream bool) (*entity.GenerateResult, error)
}

// VectorIndexConnector is the hosted vector index capability consumed by the chat flow.
type VectorIndexConnector interface {
	Query(ctx context.Context, vector []float32, topK int) ([]entity.VectorMatch, error)
}
