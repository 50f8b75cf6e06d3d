package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/adapter/memory"
	"adpacer/internal/adapter/usecase"
	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

type nopNotifier struct{}

func (nopNotifier) CampaignTransition(domain.TransitionEvent) {}
func (nopNotifier) BrandBudgetExceeded(domain.BudgetAlert)    {}

// newTestServer wires the full engine over the in-memory repository: one
// active brand with a single active campaign.
func newTestServer(t *testing.T) (*httptest.Server, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	repo.PutBrand(domain.Brand{
		ID:            1,
		Name:          "Nike",
		DailyBudget:   decimal.NewFromInt(1000),
		MonthlyBudget: decimal.NewFromInt(20000),
		IsActive:      true,
	})
	repo.PutCampaign(domain.Campaign{ID: 1, BrandID: 1, Name: "summer", Status: domain.StatusActive})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := port.SystemClock{}
	ledger := usecase.NewLedger(repo, repo, clock)
	machine := usecase.NewStateMachine(repo, ledger, nopNotifier{}, clock, logger)
	enforcer := usecase.NewEnforcer(repo, ledger, machine, nopNotifier{}, clock, logger, 2)

	srv := httptest.NewServer(NewHandler(enforcer, logger).Router())
	t.Cleanup(srv.Close)
	return srv, repo
}

func TestRecordSpendEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"campaign_id": 1, "amount": "12.50", "date": "2024-06-03", "description": "clicks"}`
	resp, err := http.Post(srv.URL+"/api/v1/spend", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /spend error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var out map[string]int64
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["spend_id"] == 0 {
		t.Fatal("expected a non-zero spend id")
	}
}

func TestRecordSpendRejectsBadInput(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"campaign_id": `, http.StatusBadRequest},
		{"bad date", `{"campaign_id": 1, "amount": "5", "date": "03.06.2024"}`, http.StatusBadRequest},
		{"negative amount", `{"campaign_id": 1, "amount": "-5"}`, http.StatusBadRequest},
		{"unknown campaign", `{"campaign_id": 42, "amount": "5"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		resp, err := http.Post(srv.URL+"/api/v1/spend", "application/json", strings.NewReader(tc.body))
		if err != nil {
			t.Fatalf("%s: POST error: %v", tc.name, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, resp.StatusCode, tc.want)
		}
	}
}

func TestCampaignCommands(t *testing.T) {
	srv, repo := newTestServer(t)

	post := func(path string) int {
		resp, err := http.Post(srv.URL+path, "application/json", nil)
		if err != nil {
			t.Fatalf("POST %s error: %v", path, err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	if got := post("/api/v1/campaigns/1/pause"); got != http.StatusNoContent {
		t.Fatalf("pause status = %d, want 204", got)
	}
	if got := post("/api/v1/campaigns/1/activate"); got != http.StatusNoContent {
		t.Fatalf("activate status = %d, want 204", got)
	}
	if got := post("/api/v1/campaigns/1/complete"); got != http.StatusNoContent {
		t.Fatalf("complete status = %d, want 204", got)
	}
	// Completed is terminal: a further activation conflicts.
	if got := post("/api/v1/campaigns/1/activate"); got != http.StatusConflict {
		t.Fatalf("activate after complete status = %d, want 409", got)
	}
	if got := post("/api/v1/campaigns/nope/pause"); got != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", got)
	}

	c, _ := repo.GetCampaign(context.Background(), 1)
	if c.Status != domain.StatusCompleted {
		t.Fatalf("final status = %s, want completed", c.Status)
	}
}

func TestSummaryEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	today := time.Now().UTC().Format("2006-01-02")
	body := `{"campaign_id": 1, "amount": "40", "date": "` + today + `"}`
	resp, err := http.Post(srv.URL+"/api/v1/spend", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /spend error: %v", err)
	}
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/v1/campaigns/1/summary")
	if err != nil {
		t.Fatalf("GET summary error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary status = %d, want 200", resp.StatusCode)
	}
	var summary port.CampaignSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if !summary.DailySpend.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("daily spend = %s, want 40", summary.DailySpend)
	}
	if !summary.DailyRemaining.Equal(decimal.NewFromInt(960)) {
		t.Fatalf("daily remaining = %s, want 960", summary.DailyRemaining)
	}

	resp, err = http.Get(srv.URL + "/api/v1/brands/1/summary")
	if err != nil {
		t.Fatalf("GET brand summary error: %v", err)
	}
	defer resp.Body.Close()
	var brand port.BrandSummary
	if err := json.NewDecoder(resp.Body).Decode(&brand); err != nil {
		t.Fatalf("decode brand summary: %v", err)
	}
	if !brand.DailySpend.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("brand daily spend = %s, want 40", brand.DailySpend)
	}
}

func TestRunJobEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/jobs/budget", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /jobs/budget error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var report port.TickReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Brands != 1 {
		t.Fatalf("brands checked = %d, want 1", report.Brands)
	}

	resp, err = http.Post(srv.URL+"/api/v1/jobs/unknown", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /jobs/unknown error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown job status = %d, want 404", resp.StatusCode)
	}
}
