package chat

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/unleashai/inquiries-backend/internal/entity"
	"github.com/unleashai/inquiries-backend/internal/pkg/logger"
	"github.com/unleashai/inquiries-backend/internal/pkg/response"
	"github.com/unleashai/inquiries-backend/internal/pkg/validator"
	"github.com/unleashai/inquiries-backend/internal/stream"
	"go.uber.org/zap"
)

type Handler struct {
	usecase ChatUsecase
}

func NewHandler(usecase ChatUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Chat handles POST /api/chat - relay a conversation as a normalized SSE stream
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Chat")

	var req entity.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateChat(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctxzap.Info(ctx, "processing chat request", zap.Int("message_count", len(req.Messages)))

	result, err := h.usecase.Chat(ctx, req.Messages)
	if err != nil {
		ctxzap.Error(ctx, "generation failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to process request")
		return
	}

	// Non-streaming fallback: the gateway answered with a complete object.
	if result.Stream == nil {
		response.Success(w, entity.ChatResponse{Response: result.Response})
		return
	}
	defer result.Stream.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := stream.NewReframer(w).Run(ctx, result.Stream); err != nil {
		// Headers are long gone; all we can do is cut the stream and log.
		ctxzap.Error(ctx, "upstream stream failed", zap.Error(err))
		return
	}

	ctxzap.Info(ctx, "chat stream completed")
}
