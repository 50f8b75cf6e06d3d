package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// StateMachine owns campaign activation state. Transitions follow
// draft -> active <-> paused, with active|paused -> completed as a terminal
// administrative move. Every transition is applied with a check-then-set
// discipline: eligibility is re-validated at apply time and the status swap
// is a compare-and-swap, so a verdict that went stale in the queue is
// dropped rather than applied incorrectly. Each applied transition emits an
// event to the notification sink.
type StateMachine struct {
	campaigns port.CampaignRepository
	ledger    *Ledger
	notifier  port.Notifier
	clock     port.Clock
	logger    *slog.Logger
}

// NewStateMachine wires a CampaignStateMachine over the campaign store,
// the budget ledger and the event sink.
func NewStateMachine(campaigns port.CampaignRepository, ledger *Ledger, notifier port.Notifier, clock port.Clock, logger *slog.Logger) *StateMachine {
	return &StateMachine{
		campaigns: campaigns,
		ledger:    ledger,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
	}
}

// Activate moves a draft or paused campaign to active. It succeeds only
// when the campaign is eligible at apply time; otherwise ErrIneligible is
// returned and nothing changes. The reason tags the emitted event, e.g.
// daily-reset for reactivations at the day boundary.
func (m *StateMachine) Activate(ctx context.Context, campaignID int64, reason domain.Reason) error {
	c, err := m.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: campaign %d", port.ErrNotFound, campaignID)
	}
	switch c.Status {
	case domain.StatusDraft, domain.StatusPaused:
	default:
		return fmt.Errorf("%w: cannot activate %s campaign %d", port.ErrIneligible, c.Status, campaignID)
	}

	blocker, err := m.eligibility(ctx, *c)
	if err != nil {
		return err
	}
	if blocker != domain.ReasonNone {
		return fmt.Errorf("%w: campaign %d blocked by %s", port.ErrIneligible, campaignID, blocker)
	}

	swapped, err := m.campaigns.SwapCampaignStatus(ctx, campaignID, c.Status, domain.StatusActive)
	if err != nil {
		return err
	}
	if !swapped {
		m.logger.Warn("dropping stale activation",
			slog.Int64("campaign_id", campaignID),
			slog.String("expected_status", string(c.Status)))
		return fmt.Errorf("%w: campaign %d left %s before activation applied", port.ErrStale, campaignID, c.Status)
	}
	m.emit(campaignID, c.Status, domain.StatusActive, reason)
	return nil
}

// Pause moves an active campaign to paused, recording the first failing
// eligibility reason for observability. Pausing an already paused campaign
// is a no-op. Draft and completed campaigns are never touched.
func (m *StateMachine) Pause(ctx context.Context, campaignID int64, reason domain.Reason) error {
	c, err := m.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: campaign %d", port.ErrNotFound, campaignID)
	}
	switch c.Status {
	case domain.StatusPaused:
		return nil
	case domain.StatusActive:
	default:
		return fmt.Errorf("%w: cannot pause %s campaign %d", port.ErrIneligible, c.Status, campaignID)
	}

	swapped, err := m.campaigns.SwapCampaignStatus(ctx, campaignID, domain.StatusActive, domain.StatusPaused)
	if err != nil {
		return err
	}
	if !swapped {
		m.logger.Warn("dropping stale pause", slog.Int64("campaign_id", campaignID))
		return fmt.Errorf("%w: campaign %d no longer active", port.ErrStale, campaignID)
	}
	m.emit(campaignID, domain.StatusActive, domain.StatusPaused, reason)
	return nil
}

// Complete administratively ends an active or paused campaign. Completed is
// terminal; enforcement never evaluates the campaign again.
func (m *StateMachine) Complete(ctx context.Context, campaignID int64) error {
	c, err := m.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: campaign %d", port.ErrNotFound, campaignID)
	}
	switch c.Status {
	case domain.StatusActive, domain.StatusPaused:
	default:
		return fmt.Errorf("%w: cannot complete %s campaign %d", port.ErrIneligible, c.Status, campaignID)
	}
	swapped, err := m.campaigns.SwapCampaignStatus(ctx, campaignID, c.Status, domain.StatusCompleted)
	if err != nil {
		return err
	}
	if !swapped {
		return fmt.Errorf("%w: campaign %d left %s before completion applied", port.ErrStale, campaignID, c.Status)
	}
	m.emit(campaignID, c.Status, domain.StatusCompleted, domain.ReasonAdmin)
	return nil
}

// eligibility recomputes the campaign's first blocking condition from fresh
// brand, schedule and ledger state.
func (m *StateMachine) eligibility(ctx context.Context, c domain.Campaign) (domain.Reason, error) {
	brand, err := m.campaigns.GetBrand(ctx, c.BrandID)
	if err != nil {
		return domain.ReasonNone, err
	}
	if brand == nil {
		return domain.ReasonNone, fmt.Errorf("%w: brand %d", port.ErrNotFound, c.BrandID)
	}
	var sched *domain.DaypartingSchedule
	if c.ScheduleID != nil {
		sched, err = m.campaigns.GetSchedule(ctx, *c.ScheduleID)
		if err != nil {
			return domain.ReasonNone, err
		}
		if sched == nil {
			return domain.ReasonNone, fmt.Errorf("%w: schedule %d", port.ErrNotFound, *c.ScheduleID)
		}
	}
	now := m.clock.Now()
	snap, err := m.ledger.Snapshot(ctx, c, *brand, now)
	if err != nil {
		return domain.ReasonNone, err
	}
	return domain.Blocker(*brand, sched, snap, now), nil
}

func (m *StateMachine) emit(campaignID int64, from, to domain.Status, reason domain.Reason) {
	ev := domain.TransitionEvent{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		From:       from,
		To:         to,
		Reason:     reason,
		At:         m.clock.Now(),
	}
	m.logger.Info("campaign transition",
		slog.Int64("campaign_id", campaignID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("reason", string(reason)))
	m.notifier.CampaignTransition(ev)
}
