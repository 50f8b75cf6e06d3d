package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Enforcement defines the business operations exposed by the budget
// enforcement engine. This is the primary port into the application domain:
// the HTTP adapter and the job scheduler both drive the engine through it.
// Every job entry point is idempotent and safe to re-invoke at any time.
type Enforcement interface {
	// RecordSpend validates and appends one spend record delivered by the
	// external ingestion feed. Negative amounts are rejected with
	// ErrValidation; nothing is partially applied.
	RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal, date time.Time, description string) (int64, error)

	// ActivateCampaign is the external activation command. It is allowed
	// from draft or paused and only succeeds when the campaign is fully
	// eligible; otherwise ErrIneligible is returned and nothing changes.
	ActivateCampaign(ctx context.Context, campaignID int64) error
	// PauseCampaign is the external pause command. Pausing an already
	// paused campaign is a no-op.
	PauseCampaign(ctx context.Context, campaignID int64) error
	// CompleteCampaign administratively ends a campaign. Terminal.
	CompleteCampaign(ctx context.Context, campaignID int64) error

	// EnforceBudgets is the budget enforcement tick over all brands.
	EnforceBudgets(ctx context.Context) (*TickReport, error)
	// EnforceDayparting is the fast tick restricted to campaigns carrying a
	// dayparting schedule. Same decision logic, separate cadence.
	EnforceDayparting(ctx context.Context) (*TickReport, error)
	// ResetDaily re-evaluates paused campaigns at the day boundary.
	ResetDaily(ctx context.Context) (*TickReport, error)
	// ResetMonthly re-evaluates paused campaigns at the month boundary.
	ResetMonthly(ctx context.Context) (*TickReport, error)

	// CampaignSummary reports current spend against limits for a campaign.
	CampaignSummary(ctx context.Context, campaignID int64) (*CampaignSummary, error)
	// BrandSummary reports current spend against limits for a brand.
	BrandSummary(ctx context.Context, brandID int64) (*BrandSummary, error)
}

// TickReport aggregates the outcome of one job run. Errors counts per-entity
// failures that were isolated and skipped, not failures of the run itself.
type TickReport struct {
	At        time.Time `json:"at"`
	Brands    int       `json:"brands_checked"`
	Campaigns int       `json:"campaigns_checked"`
	Paused    int       `json:"campaigns_paused"`
	Activated int       `json:"campaigns_activated"`
	Errors    int       `json:"errors"`
}

// CampaignSummary is a read-only DTO describing a campaign's budget
// position as of the call. Remaining values may be negative on overshoot.
type CampaignSummary struct {
	CampaignID       int64           `json:"campaign_id"`
	Name             string          `json:"name"`
	BrandID          int64           `json:"brand_id"`
	Status           string          `json:"status"`
	DailySpend       decimal.Decimal `json:"daily_spend"`
	MonthlySpend     decimal.Decimal `json:"monthly_spend"`
	DailyLimit       decimal.Decimal `json:"daily_budget_limit"`
	MonthlyLimit     decimal.Decimal `json:"monthly_budget_limit"`
	DailyRemaining   decimal.Decimal `json:"daily_remaining"`
	MonthlyRemaining decimal.Decimal `json:"monthly_remaining"`
}

// BrandSummary is a read-only DTO describing a brand's budget position.
type BrandSummary struct {
	BrandID          int64           `json:"brand_id"`
	Name             string          `json:"name"`
	IsActive         bool            `json:"is_active"`
	DailySpend       decimal.Decimal `json:"daily_spend"`
	MonthlySpend     decimal.Decimal `json:"monthly_spend"`
	DailyBudget      decimal.Decimal `json:"daily_budget"`
	MonthlyBudget    decimal.Decimal `json:"monthly_budget"`
	DailyRemaining   decimal.Decimal `json:"daily_remaining"`
	MonthlyRemaining decimal.Decimal `json:"monthly_remaining"`
}
