package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Spend is one append-only spend record attributed to a calendar date.
// Records are created by external ingestion and never mutated or deleted by
// the enforcement core; all budget totals are derived from them.
type Spend struct {
	ID          int64
	CampaignID  int64
	Amount      decimal.Decimal
	Date        time.Time // UTC midnight of the attributed day
	Description string
	CreatedAt   time.Time
}

// DateOf truncates an instant to the UTC calendar day spend is attributed to.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthOf returns the year and month containing the instant, in UTC.
func MonthOf(t time.Time) (int, time.Month) {
	t = t.UTC()
	return t.Year(), t.Month()
}
