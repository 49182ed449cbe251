// Package uploader is the operator-side ingestion client: it reads tabular
// records, batches them, and POSTs each batch to the ingest endpoint with
// retries and a fixed inter-batch delay.
package uploader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/unleashai/inquiries-backend/internal/config"
	"github.com/unleashai/inquiries-backend/internal/entity"
	"github.com/unleashai/inquiries-backend/internal/integration/common"
	pkghttp "github.com/unleashai/inquiries-backend/pkg/http"
	"go.uber.org/zap"
)

const previewLen = 60

// Progress describes one batch about to be sent. Batch is 1-based.
type Progress struct {
	Batch        int
	TotalBatches int
	Sent         int
	Preview      string
}

type ProgressFunc func(Progress)

type Uploader struct {
	cfg       config.UploaderConfig
	connector *pkghttp.Connector
	logger    *zap.Logger

	onProgress ProgressFunc
	sleep      func(time.Duration)
}

type Option func(*Uploader)

// WithProgress registers a callback invoked before each batch is sent.
func WithProgress(fn ProgressFunc) Option {
	return func(u *Uploader) {
		u.onProgress = fn
	}
}

func New(cfg config.UploaderConfig, logger *zap.Logger, opts ...Option) *Uploader {
	u := &Uploader{
		cfg:       cfg,
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		logger:    logger,
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run reads the file and sends every batch from StartBatch onward, strictly
// sequentially: a batch is only started once the previous one succeeded.
// Each batch is retried per the configured policy; exhausting retries aborts
// the whole run with the last error.
func (u *Uploader) Run(ctx context.Context, path string) error {
	records, err := ReadRecords(path, u.cfg.TruncateLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no usable records in %s", path)
	}

	batches := Partition(records, u.cfg.BatchSize)

	u.logger.Info("starting upload",
		zap.Int("record_count", len(records)),
		zap.Int("batch_count", len(batches)),
		zap.Int("start_batch", u.cfg.StartBatch),
	)

	if u.cfg.StartBatch >= len(batches) {
		return fmt.Errorf("start batch %d is out of range: only %d batches", u.cfg.StartBatch, len(batches))
	}

	sent := 0
	for i := u.cfg.StartBatch; i < len(batches); i++ {
		batch := batches[i]

		u.reportProgress(Progress{
			Batch:        i + 1,
			TotalBatches: len(batches),
			Sent:         sent,
			Preview:      preview(batch[0].Context),
		})

		if err := u.sendBatch(ctx, batch); err != nil {
			u.logger.Error("batch failed after all retries",
				zap.Int("batch", i+1),
				zap.Int("batch_count", len(batches)),
				zap.Error(err),
			)
			return fmt.Errorf("batch %d/%d: %w", i+1, len(batches), err)
		}
		sent += len(batch)

		u.logger.Info("batch uploaded",
			zap.Int("batch", i+1),
			zap.Int("batch_count", len(batches)),
			zap.Int("records_sent", sent),
		)

		// Fixed delay between batches to respect downstream rate limits.
		if i < len(batches)-1 {
			u.sleep(u.cfg.InterBatchDelay)
		}
	}

	u.logger.Info("upload complete", zap.Int("records_sent", sent))
	return nil
}

func (u *Uploader) sendBatch(ctx context.Context, batch []entity.IngestEntry) error {
	opts := append(u.cfg.Retry.ToRetryOptions(), retry.Context(ctx))
	return retry.Do(func() error {
		var resp entity.IngestResponse
		return u.connector.DoRequest(ctx, http.MethodPost, u.cfg.IngestEndpoint,
			entity.IngestRequest{Entries: batch}, &resp)
	}, opts...)
}

func (u *Uploader) reportProgress(p Progress) {
	if u.onProgress != nil {
		u.onProgress(p)
	}
}

// Partition splits records into consecutive batches of at most size entries,
// preserving order. The last batch may be short.
func Partition(records []entity.IngestEntry, size int) [][]entity.IngestEntry {
	if size < 1 {
		size = 1
	}
	batches := make([][]entity.IngestEntry, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		batches = append(batches, records[start:end])
	}
	return batches
}

func preview(s string) string {
	if len(s) <= previewLen {
		return s
	}
	cut := previewLen
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "..."
}
