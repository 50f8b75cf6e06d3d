package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleActivate processes the external activation command. An ineligible
// campaign yields HTTP 409 with the blocking reason; nothing is changed.
func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	h.campaignCommand(w, r, h.engine.ActivateCampaign)
}

// handlePause processes the external pause command. Pausing an already
// paused campaign is a no-op and still returns 204.
func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.campaignCommand(w, r, h.engine.PauseCampaign)
}

// handleComplete administratively ends a campaign.
func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	h.campaignCommand(w, r, h.engine.CompleteCampaign)
}

func (h *Handler) campaignCommand(w http.ResponseWriter, r *http.Request, cmd func(context.Context, int64) error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := cmd(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignSummary returns the campaign's spend against its effective
// limits as of the call.
func (h *Handler) handleCampaignSummary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	summary, err := h.engine.CampaignSummary(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(summary); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleBrandSummary returns the brand's spend against its budgets.
func (h *Handler) handleBrandSummary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid brand id", http.StatusBadRequest)
		return
	}
	summary, err := h.engine.BrandSummary(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(summary); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
