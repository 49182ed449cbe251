package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/unleashai/inquiries-backend/internal/entity"
	"go.uber.org/zap"
)

const (
	maxFrameSize = 1 << 20
	initialBuf   = 64 << 10
)

// Reframer copies a vendor chunk stream to a client sink as normalized SSE
// events, one `data: {"text": ...}` line per extracted delta. Chunks are
// forwarded in arrival order with no buffering beyond per-chunk decode.
type Reframer struct {
	w       io.Writer
	flusher http.Flusher
}

func NewReframer(w io.Writer) *Reframer {
	r := &Reframer{w: w}
	if f, ok := w.(http.Flusher); ok {
		r.flusher = f
	}
	return r
}

// Run consumes upstream until EOF. A clean upstream close returns nil; an
// upstream read error is returned as-is. Failures writing to the sink mean
// the client went away, which ends the relay without error. Undecodable
// chunks are skipped, never fatal.
func (r *Reframer) Run(ctx context.Context, upstream io.Reader) error {
	sc := bufio.NewScanner(upstream)
	sc.Buffer(make([]byte, 0, initialBuf), maxFrameSize)
	sc.Split(splitFrames)

	emitted := 0
	for sc.Scan() {
		if ctx.Err() != nil {
			ctxzap.Debug(ctx, "client disconnected, stopping relay", zap.Int("events_emitted", emitted))
			return nil
		}

		delta, ok := DecodeChunk(sc.Bytes())
		if !ok {
			continue
		}

		if err := r.emit(delta); err != nil {
			ctxzap.Debug(ctx, "sink closed, stopping relay", zap.Error(err), zap.Int("events_emitted", emitted))
			return nil
		}
		emitted++
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read upstream chunk: %w", err)
	}

	ctxzap.Debug(ctx, "upstream stream completed", zap.Int("events_emitted", emitted))
	return nil
}

func (r *Reframer) emit(delta string) error {
	payload, err := json.Marshal(entity.StreamEvent{Text: delta})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	if r.flusher != nil {
		r.flusher.Flush()
	}
	return nil
}

// splitFrames tokenizes the upstream byte stream on blank lines, the SSE
// frame terminator. A trailing unterminated frame at EOF is still yielded.
func splitFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.Index(data, []byte("\n\n")); i >= 0 {
		return i + 2, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
