package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Brand represents an advertiser account owning campaigns and the top-level
// budget ceilings they inherit. Budgets are fixed ceilings; remaining budget
// is always derived from the spend log, never stored.
type Brand struct {
	ID            int64
	Name          string
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
