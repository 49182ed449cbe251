package chat

import (
	"context"

	"github.com/unleashai/inquiries-backend/internal/entity"
)

type ChatUsecase interface {
	Chat(ctx context.Context, messages []entity.ChatMessage) (*entity.GenerateResult, error)
}
