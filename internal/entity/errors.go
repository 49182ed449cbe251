package entity

import "errors"

// Domain errors
var (
	// Chat errors
	ErrEmptyMessages = errors.New("messages array cannot be empty")
	ErrInvalidRole   = errors.New("invalid message role")

	// Ingest errors
	ErrEmptyEntries = errors.New("entries array cannot be empty")
	ErrEmptyEntry   = errors.New("entry has empty context or response")

	// Gateway errors
	ErrEmptyEmbedding = errors.New("gateway returned no embedding")
	ErrEmptyResponse  = errors.New("gateway returned empty response")
)
