package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpacer/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the spend ingestion feed,
// the external campaign commands, read-only budget summaries and manual
// triggers for the four enforcement jobs. All business decisions live
// behind the port.Enforcement interface.
type Handler struct {
	engine port.Enforcement
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(engine port.Enforcement, logger *slog.Logger) *Handler {
	h := &Handler{engine: engine, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/spend", h.handleRecordSpend)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Post("/activate", h.handleActivate)
			r.Post("/pause", h.handlePause)
			r.Post("/complete", h.handleComplete)
			r.Get("/summary", h.handleCampaignSummary)
		})
		r.Get("/brands/{id}/summary", h.handleBrandSummary)
		r.Post("/jobs/{job}", h.handleRunJob)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps core errors onto HTTP statuses. Validation problems are
// client errors; ineligible or stale transitions are conflicts; anything
// else is logged and hidden behind a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrIneligible), errors.Is(err, port.ErrStale):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
