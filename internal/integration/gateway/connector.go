package gateway

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

// Connector talks to the hosted AI gateway: embeddings and chat generation.
type Connector struct {
	config    config.GatewayConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GatewayConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Embed requests an embedding vector for text
func (c *Connector) Embed(ctx context.Context, text string) ([]float32, error) {
	ctxzap.Debug(ctx, "requesting embedding from AI gateway", zap.Int("text_length", len(text)))

	req := entity.GatewayEmbedRequest{Text: []string{text}}

	var resp entity.GatewayEmbedResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.EmbedEndpoint, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}

	if len(resp.Result.Data) == 0 || len(resp.Result.Data[0]) == 0 {
		return nil, entity.ErrEmptyEmbedding
	}

	ctxzap.Debug(ctx, "embedding received", zap.Int("dimensions", len(resp.Result.Data[0])))

	return resp.Result.Data[0], nil
}

// Generate runs a chat completion. When stream is true the result carries the
// raw vendor chunk stream and the caller owns closing it; otherwise the
// result carries the complete response text.
func (c *Connector) Generate(ctx context.Context, messages []entity.ChatMessage, stream bool) (*entity.GenerateResult, error) {
	ctxzap.Info(ctx, "generating via AI gateway",
		zap.Int("message_count", len(messages)),
		zap.Bool("stream", stream),
	)

	req := entity.GatewayGenerateRequest{Messages: messages, Stream: stream}

	if stream {
		body, err := c.connector.DoStreamRequest(ctx, http.MethodPost, c.config.GenerateEndpoint, req)
		if err != nil {
			return nil, fmt.Errorf("generate stream request failed: %w", err)
		}
		return &entity.GenerateResult{Stream: body}, nil
	}

	var resp entity.GatewayGenerateResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.GenerateEndpoint, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}

	if resp.Result.Response == "" {
		return nil, entity.ErrEmptyResponse
	}

	ctxzap.Info(ctx, "generation completed", zap.Int("response_length", len(resp.Result.Response)))

	return &entity.GenerateResult{Response: resp.Result.Response}, nil
}
