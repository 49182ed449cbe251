package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/unleashai/inquiries-backend/internal/entity"
	"go.uber.org/zap"
)

// Usecase turns a batch of records into vector entries and writes them to
// the index.
type Usecase struct {
	gateway GatewayConnector
	index   VectorIndexConnector
	logger  *zap.Logger
}

func NewUsecase(
	gateway GatewayConnector,
	index VectorIndexConnector,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		gateway: gateway,
		index:   index,
		logger:  logger,
	}
}

// Ingest embeds each entry's context and upserts the batch in one index
// call. The policy is fail-fast: the first embedding failure aborts the
// whole batch with the entry index in the error, and nothing is upserted.
// Ids are fresh UUIDs, so re-running a batch never overwrites prior entries.
func (u *Usecase) Ingest(ctx context.Context, entries []entity.IngestEntry) (int, error) {
	if len(entries) == 0 {
		return 0, entity.ErrEmptyEntries
	}

	ctxzap.Info(ctx, "ingesting batch", zap.Int("entry_count", len(entries)))

	vectors := make([]entity.VectorEntry, 0, len(entries))
	for i, e := range entries {
		vec, err := u.gateway.Embed(ctx, e.Context)
		if err != nil {
			return 0, fmt.Errorf("embed entry %d: %w", i, err)
		}
		vectors = append(vectors, entity.VectorEntry{
			ID:     uuid.New().String(),
			Values: vec,
			Metadata: entity.VectorMetadata{
				Context:  e.Context,
				Response: e.Response,
			},
		})
	}

	if err := u.index.Upsert(ctx, vectors); err != nil {
		return 0, fmt.Errorf("upsert batch: %w", err)
	}

	ctxzap.Info(ctx, "batch ingested", zap.Int("count", len(vectors)))

	return len(vectors), nil
}
