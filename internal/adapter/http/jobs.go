package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleRunJob triggers one enforcement job by name: budget, dayparting,
// daily-reset or monthly-reset. Jobs are idempotent, so manual re-runs are
// always safe; the run's report is returned.
func (h *Handler) handleRunJob(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "job")
	run := map[string]func() (any, error){
		"budget":        func() (any, error) { return h.engine.EnforceBudgets(r.Context()) },
		"dayparting":    func() (any, error) { return h.engine.EnforceDayparting(r.Context()) },
		"daily-reset":   func() (any, error) { return h.engine.ResetDaily(r.Context()) },
		"monthly-reset": func() (any, error) { return h.engine.ResetMonthly(r.Context()) },
	}[name]
	if run == nil {
		http.Error(w, "unknown job", http.StatusNotFound)
		return
	}
	report, err := run()
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(report); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
