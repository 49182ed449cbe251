package ingest

import (
	"context"

	"github.com/unleashai/inquiries-backend/internal/entity"
)

type IngestUsecase interface {
	Ingest(ctx context.Context, entries []entity.IngestEntry) (int, error)
}
