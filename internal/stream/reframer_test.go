package stream

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// failWriter errors on every write, standing in for a closed client sink.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

// errReader yields its data then a read error instead of EOF.
type errReader struct {
	data io.Reader
	err  error
	done bool
}

func (r *errReader) Read(p []byte) (int, error) {
	if !r.done {
		n, err := r.data.Read(p)
		if err == io.EOF {
			r.done = true
			return n, nil
		}
		return n, err
	}
	return 0, r.err
}

func TestRun_NormalizesAndFiltersSentinel(t *testing.T) {
	upstream := strings.NewReader("data: {\"response\":\"Hi\"}\n\ndata: [DONE]\n\n")
	var out strings.Builder

	if err := NewReframer(&out).Run(context.Background(), upstream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "data: {\"text\":\"Hi\"}\n\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestRun_PreservesChunkOrder(t *testing.T) {
	upstream := strings.NewReader(
		"data: {\"response\":\"one \"}\n\n" +
			"data: {\"response\":\"two \"}\n\n" +
			"data: {\"response\":\"three\"}\n\n",
	)
	var out strings.Builder

	if err := NewReframer(&out).Run(context.Background(), upstream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "data: {\"text\":\"one \"}\n\n" +
		"data: {\"text\":\"two \"}\n\n" +
		"data: {\"text\":\"three\"}\n\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestRun_SkipsUndecodableChunks(t *testing.T) {
	upstream := strings.NewReader(
		"data: {broken json\n\n" +
			"data: {\"response\":\"still here\"}\n\n",
	)
	var out strings.Builder

	if err := NewReframer(&out).Run(context.Background(), upstream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "data: {\"text\":\"still here\"}\n\n"
	if out.String() != want {
		t.Errorf("expected bad chunk skipped and good chunk forwarded, got %q", out.String())
	}
}

func TestRun_TrailingUnterminatedFrame(t *testing.T) {
	upstream := strings.NewReader("data: {\"response\":\"tail\"}")
	var out strings.Builder

	if err := NewReframer(&out).Run(context.Background(), upstream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.String() != "data: {\"text\":\"tail\"}\n\n" {
		t.Errorf("expected trailing frame decoded, got %q", out.String())
	}
}

func TestRun_ClosedSinkIsSoftFailure(t *testing.T) {
	upstream := strings.NewReader("data: {\"response\":\"x\"}\n\ndata: {\"response\":\"y\"}\n\n")

	if err := NewReframer(failWriter{}).Run(context.Background(), upstream); err != nil {
		t.Errorf("expected nil on closed sink, got %v", err)
	}
}

func TestRun_UpstreamErrorPropagates(t *testing.T) {
	upstream := &errReader{
		data: strings.NewReader("data: {\"response\":\"partial\"}\n\n"),
		err:  errors.New("connection reset"),
	}
	var out strings.Builder

	err := NewReframer(&out).Run(context.Background(), upstream)
	if err == nil {
		t.Fatal("expected upstream error to propagate")
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("expected wrapped upstream error, got %v", err)
	}

	// The chunk received before the failure was still forwarded.
	if out.String() != "data: {\"text\":\"partial\"}\n\n" {
		t.Errorf("expected partial output before failure, got %q", out.String())
	}
}

func TestRun_CanceledContextStopsRelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	upstream := strings.NewReader("data: {\"response\":\"never\"}\n\n")
	var out strings.Builder

	if err := NewReframer(&out).Run(ctx, upstream); err != nil {
		t.Errorf("expected nil after client disconnect, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output after disconnect, got %q", out.String())
	}
}
