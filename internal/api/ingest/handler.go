package ingest

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/unleashai/inquiries-backend/internal/entity"
	"github.com/unleashai/inquiries-backend/internal/pkg/logger"
	"github.com/unleashai/inquiries-backend/internal/pkg/response"
	"github.com/unleashai/inquiries-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	usecase IngestUsecase
}

func NewHandler(usecase IngestUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Ingest handles POST /api/ingest - embed and index a batch of records
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Ingest")

	var req entity.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateIngest(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := h.usecase.Ingest(ctx, req.Entries)
	if err != nil {
		ctxzap.Error(ctx, "failed to ingest batch", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, entity.IngestResponse{Success: true, Count: count})
}
