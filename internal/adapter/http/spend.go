package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// spendRequest is one (campaign, amount, date) triple from the external
// spend feed. Date is a calendar day, not a timestamp; when omitted the
// spend is attributed to today in UTC.
type spendRequest struct {
	CampaignID  int64           `json:"campaign_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`
}

// handleRecordSpend validates and records one spend event. Malformed JSON
// or dates produce HTTP 400; a negative amount is rejected by the ledger
// with the same status. On success it returns the new record's id.
func (h *Handler) handleRecordSpend(w http.ResponseWriter, r *http.Request) {
	var req spendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	date := time.Now().UTC()
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			http.Error(w, "invalid 'date', want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}
	id, err := h.engine.RecordSpend(r.Context(), req.CampaignID, req.Amount, date, req.Description)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]int64{"spend_id": id})
}
