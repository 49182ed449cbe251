package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/unleashai/inquiries-backend/internal/entity"
	"go.uber.org/zap"
)

type mockGateway struct {
	failAt     int // 1-based call number to fail on, 0 = never
	embedCalls int
}

func (m *mockGateway) Embed(_ context.Context, text string) ([]float32, error) {
	m.embedCalls++
	if m.failAt != 0 && m.embedCalls == m.failAt {
		return nil, errors.New("model unavailable")
	}
	return []float32{float32(len(text))}, nil
}

type mockIndex struct {
	upsertCalls int
	upserted    []entity.VectorEntry
	upsertErr   error
}

func (m *mockIndex) Upsert(_ context.Context, entries []entity.VectorEntry) error {
	m.upsertCalls++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, entries...)
	return nil
}

func makeEntries(n int) []entity.IngestEntry {
	entries := make([]entity.IngestEntry, n)
	for i := range entries {
		entries[i] = entity.IngestEntry{
			Context:  strings.Repeat("c", i+1),
			Response: strings.Repeat("r", i+1),
		}
	}
	return entries
}

func TestIngest_UpsertsWholeBatch(t *testing.T) {
	gw := &mockGateway{}
	idx := &mockIndex{}
	uc := NewUsecase(gw, idx, zap.NewNop())

	count, err := uc.Ingest(context.Background(), makeEntries(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
	if idx.upsertCalls != 1 {
		t.Errorf("expected one batched upsert call, got %d", idx.upsertCalls)
	}
	if len(idx.upserted) != 3 {
		t.Fatalf("expected 3 vectors stored, got %d", len(idx.upserted))
	}
	if idx.upserted[0].Metadata.Context != "c" || idx.upserted[0].Metadata.Response != "r" {
		t.Errorf("metadata not preserved: %+v", idx.upserted[0].Metadata)
	}
}

func TestIngest_GeneratesUniqueIDs(t *testing.T) {
	gw := &mockGateway{}
	idx := &mockIndex{}
	uc := NewUsecase(gw, idx, zap.NewNop())

	if _, err := uc.Ingest(context.Background(), makeEntries(5)); err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, v := range idx.upserted {
		if v.ID == "" {
			t.Error("expected non-empty vector id")
		}
		if seen[v.ID] {
			t.Errorf("duplicate vector id %s", v.ID)
		}
		seen[v.ID] = true
	}
}

func TestIngest_FailFastNamesEntry(t *testing.T) {
	gw := &mockGateway{failAt: 2}
	idx := &mockIndex{}
	uc := NewUsecase(gw, idx, zap.NewNop())

	_, err := uc.Ingest(context.Background(), makeEntries(3))
	if err == nil {
		t.Fatal("expected embedding failure to abort the batch")
	}
	if !strings.Contains(err.Error(), "entry 1") {
		t.Errorf("expected error to name the failing entry index, got %v", err)
	}
	if idx.upsertCalls != 0 {
		t.Errorf("expected nothing upserted on failure, got %d calls", idx.upsertCalls)
	}
	// Fail-fast: entries after the failure are never embedded.
	if gw.embedCalls != 2 {
		t.Errorf("expected embedding to stop at the failure, got %d calls", gw.embedCalls)
	}
}

func TestIngest_UpsertFailureSurfaced(t *testing.T) {
	gw := &mockGateway{}
	idx := &mockIndex{upsertErr: errors.New("index write failed")}
	uc := NewUsecase(gw, idx, zap.NewNop())

	_, err := uc.Ingest(context.Background(), makeEntries(2))
	if err == nil || !strings.Contains(err.Error(), "index write failed") {
		t.Errorf("expected upsert error surfaced, got %v", err)
	}
}

func TestIngest_EmptyBatchRejected(t *testing.T) {
	uc := NewUsecase(&mockGateway{}, &mockIndex{}, zap.NewNop())

	if _, err := uc.Ingest(context.Background(), nil); !errors.Is(err, entity.ErrEmptyEntries) {
		t.Errorf("expected ErrEmptyEntries, got %v", err)
	}
}
