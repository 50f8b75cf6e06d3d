package notify

import (
	"log/slog"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// Notifier is a slog-backed notification sink. Events are handed to a
// bounded channel and written by a single background goroutine; when the
// buffer is full the event is counted and dropped so the enforcement
// pipeline never blocks on the sink.
type Notifier struct {
	logger *slog.Logger
	events chan any
	done   chan struct{}
}

var _ port.Notifier = (*Notifier)(nil)

// NewNotifier starts the sink with the given buffer size.
func NewNotifier(logger *slog.Logger, buffer int) *Notifier {
	if buffer < 1 {
		buffer = 64
	}
	n := &Notifier{
		logger: logger,
		events: make(chan any, buffer),
		done:   make(chan struct{}),
	}
	go n.drain()
	return n
}

// CampaignTransition delivers a transition event without blocking.
func (n *Notifier) CampaignTransition(ev domain.TransitionEvent) {
	n.offer(ev)
}

// BrandBudgetExceeded delivers a brand budget alert without blocking.
func (n *Notifier) BrandBudgetExceeded(alert domain.BudgetAlert) {
	n.offer(alert)
}

// Close stops the background writer after the buffer is drained.
func (n *Notifier) Close() {
	close(n.events)
	<-n.done
}

func (n *Notifier) offer(ev any) {
	select {
	case n.events <- ev:
	default:
		n.logger.Warn("notification buffer full, event dropped")
	}
}

func (n *Notifier) drain() {
	defer close(n.done)
	for ev := range n.events {
		switch ev := ev.(type) {
		case domain.TransitionEvent:
			n.logger.Info("notification: campaign transition",
				slog.String("event_id", ev.ID),
				slog.Int64("campaign_id", ev.CampaignID),
				slog.String("from", string(ev.From)),
				slog.String("to", string(ev.To)),
				slog.String("reason", string(ev.Reason)),
				slog.Time("at", ev.At))
		case domain.BudgetAlert:
			n.logger.Warn("notification: brand budget exceeded",
				slog.String("event_id", ev.ID),
				slog.Int64("brand_id", ev.BrandID),
				slog.String("reason", string(ev.Reason)),
				slog.Time("at", ev.At))
		}
	}
}
