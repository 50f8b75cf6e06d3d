package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Verdict is the enforcement decision for one campaign at one instant.
type Verdict int

const (
	NoChange Verdict = iota
	Activate
	Pause
)

func (v Verdict) String() string {
	switch v {
	case Activate:
		return "activate"
	case Pause:
		return "pause"
	default:
		return "no-change"
	}
}

// Reason tags a transition event for observability. Pause reasons carry the
// first failing eligibility condition; reset reasons tag reactivations.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonBrandInactive Reason = "brand-inactive"
	ReasonBrandBudget   Reason = "brand-budget-exceeded"
	ReasonBudget        Reason = "budget-exceeded"
	ReasonDayparting    Reason = "dayparting"
	ReasonDailyReset    Reason = "daily-reset"
	ReasonMonthlyReset  Reason = "monthly-reset"
	ReasonAdmin         Reason = "admin"
)

// BudgetSnapshot carries the remaining-budget figures for one campaign and
// its owning brand as of a single ledger read. Remaining values may be
// negative when spend has overshot the ceiling.
type BudgetSnapshot struct {
	BrandDailyRemaining   decimal.Decimal
	BrandMonthlyRemaining decimal.Decimal
	DailyRemaining        decimal.Decimal
	MonthlyRemaining      decimal.Decimal
}

// BrandBudgetAvailable reports whether the brand still has both daily and
// monthly headroom. Exactly exhausted counts as unavailable.
func (s BudgetSnapshot) BrandBudgetAvailable() bool {
	return s.BrandDailyRemaining.IsPositive() && s.BrandMonthlyRemaining.IsPositive()
}

// CampaignBudgetAvailable reports whether the campaign's effective budgets
// still have headroom. Exactly exhausted counts as unavailable.
func (s BudgetSnapshot) CampaignBudgetAvailable() bool {
	return s.DailyRemaining.IsPositive() && s.MonthlyRemaining.IsPositive()
}

// Blocker returns the first failing eligibility condition in the diagnostic
// order brand-inactive > brand-budget > campaign-budget > dayparting, or
// ReasonNone when the campaign is fully eligible to run. The ordering only
// affects which reason gets reported; any single failure blocks.
func Blocker(brand Brand, sched *DaypartingSchedule, snap BudgetSnapshot, now time.Time) Reason {
	if !brand.IsActive {
		return ReasonBrandInactive
	}
	if !snap.BrandBudgetAvailable() {
		return ReasonBrandBudget
	}
	if !snap.CampaignBudgetAvailable() {
		return ReasonBudget
	}
	// Dayparting is opt-in; no schedule means always within schedule.
	if sched != nil && !sched.ActiveAt(now) {
		return ReasonDayparting
	}
	return ReasonNone
}

// Decide computes the enforcement verdict for a campaign from its current
// status and eligibility. Draft and completed campaigns are never touched by
// enforcement: draft has not opted in, completed is terminal.
func Decide(c Campaign, brand Brand, sched *DaypartingSchedule, snap BudgetSnapshot, now time.Time) (Verdict, Reason) {
	blocker := Blocker(brand, sched, snap, now)
	switch c.Status {
	case StatusActive:
		if blocker != ReasonNone {
			return Pause, blocker
		}
	case StatusPaused:
		if blocker == ReasonNone {
			return Activate, ReasonNone
		}
	}
	return NoChange, ReasonNone
}
