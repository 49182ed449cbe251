package uploader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/unleashai/inquiries-backend/internal/entity"
	"github.com/unleashai/inquiries-backend/internal/pkg/truncate"
)

// ReadRecords parses a delimited file whose first row is a header naming a
// Context and a Response column (case-insensitive). Fields are trimmed and
// truncated to the byte limit; rows with a missing or empty field are
// skipped. Record order follows source order.
func ReadRecords(path string, truncateLimit int) ([]entity.IngestEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	contextCol, responseCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "context":
			contextCol = i
		case "response":
			responseCol = i
		}
	}
	if contextCol < 0 || responseCol < 0 {
		return nil, errors.New("header must contain Context and Response columns")
	}

	var records []entity.IngestEntry
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", len(records)+1, err)
		}
		if len(row) <= contextCol || len(row) <= responseCol {
			continue
		}

		entry := entity.IngestEntry{
			Context:  truncate.Bytes(strings.TrimSpace(row[contextCol]), truncateLimit),
			Response: truncate.Bytes(strings.TrimSpace(row[responseCol]), truncateLimit),
		}
		if entry.Context == "" || entry.Response == "" {
			continue
		}
		records = append(records, entry)
	}

	return records, nil
}
