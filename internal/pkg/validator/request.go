package validator

import (
	"fmt"

	"github.com/unleashai/inquiries-backend/internal/entity"
)

// ValidateChat checks the chat request shape: a non-empty conversation where
// every message carries a known role.
func ValidateChat(req *entity.ChatRequest) error {
	if len(req.Messages) == 0 {
		return entity.ErrEmptyMessages
	}
	for i, m := range req.Messages {
		if err := m.Role.Validate(); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	return nil
}

// ValidateIngest checks the ingest request shape. Empty entries are rejected
// here rather than deep in the pipeline so the caller gets a 400, not a 500.
func ValidateIngest(req *entity.IngestRequest) error {
	if len(req.Entries) == 0 {
		return entity.ErrEmptyEntries
	}
	for i, e := range req.Entries {
		if e.Context == "" || e.Response == "" {
			return fmt.Errorf("entry %d: %w", i, entity.ErrEmptyEntry)
		}
	}
	return nil
}
