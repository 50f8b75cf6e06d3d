package domain

import (
	"time"
)

// TransitionEvent records one applied campaign status transition for the
// external notification/log sink.
type TransitionEvent struct {
	ID         string
	CampaignID int64
	From       Status
	To         Status
	Reason     Reason
	At         time.Time
}

// BudgetAlert signals that a brand exhausted its budget during a tick. All
// of the brand's running campaigns are paused when it fires.
type BudgetAlert struct {
	ID      string
	BrandID int64
	Reason  Reason
	At      time.Time
}
