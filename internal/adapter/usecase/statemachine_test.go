package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"adpacer/internal/adapter/memory"
	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
	"adpacer/internal/core/port/mocks"
)

// sinkNotifier records everything emitted through the notification port.
type sinkNotifier struct {
	mu     sync.Mutex
	events []domain.TransitionEvent
	alerts []domain.BudgetAlert
}

func (s *sinkNotifier) CampaignTransition(ev domain.TransitionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *sinkNotifier) BrandBudgetExceeded(alert domain.BudgetAlert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, alert)
}

func (s *sinkNotifier) Events() []domain.TransitionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TransitionEvent(nil), s.events...)
}

func (s *sinkNotifier) Alerts() []domain.BudgetAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.BudgetAlert(nil), s.alerts...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type machineHarness struct {
	repo     *memory.Repository
	clock    *fixedClock
	notifier *sinkNotifier
	ledger   *Ledger
	machine  *StateMachine
}

func newMachineHarness() *machineHarness {
	repo := memory.NewRepository()
	clock := newFixedClock(testDay)
	notifier := &sinkNotifier{}
	ledger := NewLedger(repo, repo, clock)
	machine := NewStateMachine(repo, ledger, notifier, clock, discardLogger())
	return &machineHarness{repo: repo, clock: clock, notifier: notifier, ledger: ledger, machine: machine}
}

func (h *machineHarness) seedBrand(id int64, daily, monthly int64, active bool) {
	h.repo.PutBrand(domain.Brand{
		ID:            id,
		Name:          "brand",
		DailyBudget:   decimal.NewFromInt(daily),
		MonthlyBudget: decimal.NewFromInt(monthly),
		IsActive:      active,
	})
}

func TestActivateFromPaused(t *testing.T) {
	h := newMachineHarness()
	h.seedBrand(1, 1000, 20000, true)
	h.repo.PutCampaign(domain.Campaign{ID: 1, BrandID: 1, Status: domain.StatusPaused})

	if err := h.machine.Activate(context.Background(), 1, domain.ReasonDailyReset); err != nil {
		t.Fatalf("Activate error: %v", err)
	}

	c, _ := h.repo.GetCampaign(context.Background(), 1)
	if c.Status != domain.StatusActive {
		t.Fatalf("status = %s, want active", c.Status)
	}
	events := h.notifier.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.From != domain.StatusPaused || ev.To != domain.StatusActive || ev.Reason != domain.ReasonDailyReset {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestActivateBlockedByBudget(t *testing.T) {
	h := newMachineHarness()
	h.seedBrand(1, 100, 20000, true)
	h.repo.PutCampaign(domain.Campaign{ID: 1, BrandID: 1, Status: domain.StatusPaused})

	if _, err := h.ledger.RecordSpend(context.Background(), 1, decimal.NewFromInt(150), testDay, ""); err != nil {
		t.Fatalf("RecordSpend error: %v", err)
	}

	err := h.machine.Activate(context.Background(), 1, domain.ReasonAdmin)
	if !errors.Is(err, port.ErrIneligible) {
		t.Fatalf("expected ErrIneligible, got %v", err)
	}
	c, _ := h.repo.GetCampaign(context.Background(), 1)
	if c.Status != domain.StatusPaused {
		t.Fatalf("ineligible activation must not change status, got %s", c.Status)
	}
}

func TestActivateFromCompleted(t *testing.T) {
	h := newMachineHarness()
	h.seedBrand(1, 1000, 20000, true)
	h.repo.PutCampaign(domain.Campaign{ID: 1, BrandID: 1, Status: domain.StatusCompleted})

	if err := h.machine.Activate(context.Background(), 1, domain.ReasonAdmin); !errors.Is(err, port.ErrIneligible) {
		t.Fatalf("expected ErrIneligible, got %v", err)
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	h := newMachineHarness()
	h.seedBrand(1, 1000, 20000, true)
	h.repo.PutCampaign(domain.Campaign{ID: 1, BrandID: 1, Status: domain.StatusPaused})

	if err := h.machine.Pause(context.Background(), 1, domain.ReasonAdmin); err != nil {
		t.Fatalf("pausing a paused campaign should be a no-op, got %v", err)
	}
	if events := h.notifier.Events(); len(events) != 0 {
		t.Fatalf("no-op pause must not emit events, got %d", len(events))
	}
}

func TestCompleteIsTerminal(t *testing.T) {
	h := newMachineHarness()
	h.seedBrand(1, 1000, 20000, true)
	h.repo.PutCampaign(domain.Campaign{ID: 1, BrandID: 1, Status: domain.StatusActive})
	ctx := context.Background()

	if err := h.machine.Complete(ctx, 1); err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if err := h.machine.Activate(ctx, 1, domain.ReasonAdmin); !errors.Is(err, port.ErrIneligible) {
		t.Fatalf("activating a completed campaign: expected ErrIneligible, got %v", err)
	}
	if err := h.machine.Pause(ctx, 1, domain.ReasonAdmin); !errors.Is(err, port.ErrIneligible) {
		t.Fatalf("pausing a completed campaign: expected ErrIneligible, got %v", err)
	}
}

// TestStaleActivationDropped simulates a campaign leaving the expected
// status between the eligibility check and the swap.
func TestStaleActivationDropped(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	spends := mocks.NewMockSpendRepository(t)

	campaign := domain.Campaign{ID: 1, BrandID: 7, Status: domain.StatusPaused}
	brand := domain.Brand{
		ID:            7,
		DailyBudget:   decimal.NewFromInt(1000),
		MonthlyBudget: decimal.NewFromInt(20000),
		IsActive:      true,
	}
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&campaign, nil)
	campaigns.EXPECT().GetBrand(mock.Anything, int64(7)).Return(&brand, nil)
	spends.EXPECT().BrandDailySpend(mock.Anything, int64(7), mock.Anything).Return(decimal.Zero, nil)
	spends.EXPECT().BrandMonthlySpend(mock.Anything, int64(7), mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	spends.EXPECT().CampaignDailySpend(mock.Anything, int64(1), mock.Anything).Return(decimal.Zero, nil)
	spends.EXPECT().CampaignMonthlySpend(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(decimal.Zero, nil)

	// The swap loses the race: zero rows matched the expected status.
	campaigns.EXPECT().
		SwapCampaignStatus(mock.Anything, int64(1), domain.StatusPaused, domain.StatusActive).
		Return(false, nil).
		Once()

	clock := newFixedClock(testDay)
	notifier := &sinkNotifier{}
	ledger := NewLedger(spends, campaigns, clock)
	machine := NewStateMachine(campaigns, ledger, notifier, clock, discardLogger())

	err := machine.Activate(context.Background(), 1, domain.ReasonDailyReset)
	if !errors.Is(err, port.ErrStale) {
		t.Fatalf("expected ErrStale, got %v", err)
	}
	if events := notifier.Events(); len(events) != 0 {
		t.Fatalf("dropped transition must not emit events, got %d", len(events))
	}
}
