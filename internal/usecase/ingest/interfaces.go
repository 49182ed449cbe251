package ingest

import (
	"context"

	"github.com/unleashai/inquiries-backend/internal/entity"
)

type GatewayConnector interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type VectorIndexConnector interface {
	Upsert(ctx context.Context, entries []entity.VectorEntry) error
}
