package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the campaign lifecycle state. It is a single tagged value; there
// is deliberately no separate is_active flag, so states like "completed but
// running" are unrepresentable.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the four lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Campaign represents an advertising campaign under exactly one brand.
// Budget overrides are optional; a nil override inherits the brand's value.
// ScheduleID optionally references a shared dayparting schedule.
type Campaign struct {
	ID            int64
	BrandID       int64
	Name          string
	Status        Status
	DailyBudget   *decimal.Decimal
	MonthlyBudget *decimal.Decimal
	ScheduleID    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DailyBudgetLimit returns the effective daily ceiling: the campaign's own
// override if set, otherwise the owning brand's budget.
func (c Campaign) DailyBudgetLimit(brand Brand) decimal.Decimal {
	if c.DailyBudget != nil {
		return *c.DailyBudget
	}
	return brand.DailyBudget
}

// MonthlyBudgetLimit returns the effective monthly ceiling, falling back to
// the owning brand's budget when no override is set.
func (c Campaign) MonthlyBudgetLimit(brand Brand) decimal.Decimal {
	if c.MonthlyBudget != nil {
		return *c.MonthlyBudget
	}
	return brand.MonthlyBudget
}
