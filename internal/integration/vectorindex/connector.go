package vectorindex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/unleashai/inquiries-backend/internal/config"
	"github.com/unleashai/inquiries-backend/internal/entity"
	"github.com/unleashai/inquiries-backend/internal/integration/common"
	pkghttp "github.com/unleashai/inquiries-backend/pkg/http"
	"go.uber.org/zap"
)

// Connector talks to the hosted vector index.
type Connector struct {
	config    config.VectorIndexConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.VectorIndexConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Upsert writes a batch of vectors. The index silently overwrites on id
// collision, so ids must be unique per call.
func (c *Connector) Upsert(ctx context.Context, entries []entity.VectorEntry) error {
	ctxzap.Info(ctx, "upserting vectors", zap.Int("count", len(entries)))

	req := entity.VectorUpsertRequest{Vectors: entries}

	var resp entity.VectorUpsertResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.UpsertEndpoint, req, &resp)
	if err != nil {
		ctxzap.Error(ctx, "failed to upsert vectors", zap.Error(err))
		return fmt.Errorf("upsert failed: %w", err)
	}

	ctxzap.Info(ctx, "vectors upserted successfully", zap.Int("count", len(entries)))
	return nil
}

// Query returns the topK nearest entries with their stored metadata.
func (c *Connector) Query(ctx context.Context, vector []float32, topK int) ([]entity.VectorMatch, error) {
	ctxzap.Debug(ctx, "querying vector index", zap.Int("top_k", topK))

	req := entity.VectorQueryRequest{
		Vector:         vector,
		TopK:           topK,
		ReturnMetadata: true,
	}

	var resp entity.VectorQueryResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.QueryEndpoint, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	ctxzap.Debug(ctx, "query completed", zap.Int("match_count", len(resp.Matches)))

	return resp.Matches, nil
}
