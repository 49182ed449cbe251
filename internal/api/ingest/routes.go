package ingest

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers ingest routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/ingest", h.Ingest)
}
