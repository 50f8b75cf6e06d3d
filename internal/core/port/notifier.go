package port

import "adpacer/internal/core/domain"

// Notifier is the outbound port for transition events and budget alerts.
// Delivery is fire-and-forget: implementations must never block or fail the
// enforcement pipeline, dropping events under pressure instead.
type Notifier interface {
	CampaignTransition(ev domain.TransitionEvent)
	BrandBudgetExceeded(alert domain.BudgetAlert)
}
