package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/unleashai/inquiries-backend/internal/api"
	chatapi "github.com/unleashai/inquiries-backend/internal/api/chat"
	ingestapi "github.com/unleashai/inquiries-backend/internal/api/ingest"
	"github.com/unleashai/inquiries-backend/internal/config"
	"github.com/unleashai/inquiries-backend/internal/integration/gateway"
	"github.com/unleashai/inquiries-backend/internal/integration/vectorindex"
	chatuc "github.com/unleashai/inquiries-backend/internal/usecase/chat"
	ingestuc "github.com/unleashai/inquiries-backend/internal/usecase/ingest"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := SetupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize external service connectors (with mock support)
	var gatewayConn GatewayConnector
	var indexConn VectorIndexConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		gatewayConn = gateway.NewMockConnector(logger)
		indexConn = vectorindex.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		gatewayConn = gateway.NewConnector(cfg.GatewayCfg, logger)
		indexConn = vectorindex.NewConnector(cfg.VectorIndexCfg, logger)
	}

	// Initialize use cases
	chatUC := chatuc.NewUsecase(gatewayConn, indexConn, cfg.ChatCfg, logger)
	ingestUC := ingestuc.NewUsecase(gatewayConn, indexConn, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	chatHandler := chatapi.NewHandler(chatUC)
	ingestHandler := ingestapi.NewHandler(ingestUC)

	// Setup router
	router := api.SetupRouter(chatHandler, ingestHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. WriteTimeout stays zero: it would cut off long
	// SSE chat streams.
	server := &http.Server{
		Addr:        cfg.ServerAddr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

// GatewayConnector is the union of gateway capabilities the use cases need.
type GatewayConnector interface {
	chatuc.GatewayConnector
	ingestuc.GatewayConnector
}

// VectorIndexConnector is the union of index capabilities the use cases need.
type VectorIndexConnector interface {
	chatuc.VectorIndexConnector
	ingestuc.VectorIndexConnector
}
