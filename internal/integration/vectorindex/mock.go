package vectorindex

import (
	"context"
	"sync"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/unleashai/inquiries-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector is an in-memory stand-in for the vector index used when
// ENABLE_MOCKS is set. Query returns the most recently stored entries rather
// than doing real similarity math.
type MockConnector struct {
	logger *zap.Logger

	mu      sync.Mutex
	entries []entity.VectorEntry
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Upsert(ctx context.Context, entries []entity.VectorEntry) error {
	ctxzap.Info(ctx, "[MOCK] upserting vectors", zap.Int("count", len(entries)))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *MockConnector) Query(ctx context.Context, vector []float32, topK int) ([]entity.VectorMatch, error) {
	ctxzap.Info(ctx, "[MOCK] querying vectors", zap.Int("top_k", topK))

	m.mu.Lock()
	defer m.mu.Unlock()

	matches := make([]entity.VectorMatch, 0, topK)
	for i := len(m.entries) - 1; i >= 0 && len(matches) < topK; i-- {
		matches = append(matches, entity.VectorMatch{
			ID:       m.entries[i].ID,
			Score:    1.0 - float64(len(matches))*0.1,
			Metadata: m.entries[i].Metadata,
		})
	}
	return matches, nil
}
