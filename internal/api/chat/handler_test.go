package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/unleashai/inquiries-backend/internal/entity"
)

type mockUsecase struct {
	result *entity.GenerateResult
	err    error
}

func (m *mockUsecase) Chat(_ context.Context, _ []entity.ChatMessage) (*entity.GenerateResult, error) {
	return m.result, m.err
}

func doChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChat_StreamingResponse(t *testing.T) {
	upstream := "data: {\"response\":\"Hello\"}\n\ndata: [DONE]\n\n"
	h := NewHandler(&mockUsecase{result: &entity.GenerateResult{
		Stream: io.NopCloser(strings.NewReader(upstream)),
	}})

	rec := doChat(t, h, `{"messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("expected text/event-stream, got %q", ct)
	}
	if got := rec.Body.String(); got != "data: {\"text\":\"Hello\"}\n\n" {
		t.Errorf("unexpected stream body: %q", got)
	}
}

func TestChat_NonStreamingFallback(t *testing.T) {
	h := NewHandler(&mockUsecase{result: &entity.GenerateResult{Response: "complete answer"}})

	rec := doChat(t, h, `{"messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var resp entity.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Response != "complete answer" {
		t.Errorf("unexpected response: %q", resp.Response)
	}
}

func TestChat_EmptyMessagesRejected(t *testing.T) {
	h := NewHandler(&mockUsecase{})

	rec := doChat(t, h, `{"messages":[]}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("expected error payload, got %q", rec.Body.String())
	}
}

func TestChat_InvalidRoleRejected(t *testing.T) {
	h := NewHandler(&mockUsecase{})

	rec := doChat(t, h, `{"messages":[{"role":"wizard","content":"hi"}]}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestChat_MalformedBodyRejected(t *testing.T) {
	h := NewHandler(&mockUsecase{})

	rec := doChat(t, h, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestChat_GenerationFailureIsServerError(t *testing.T) {
	h := NewHandler(&mockUsecase{err: errors.New("gateway exploded")})

	rec := doChat(t, h, `{"messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] == "" {
		t.Error("expected error message in response")
	}
}
