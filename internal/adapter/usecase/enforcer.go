package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// jobKind selects which working set a pass evaluates and which transitions
// it may apply. All four jobs share the same decision pipeline.
type jobKind int

const (
	jobBudget jobKind = iota
	jobDayparting
	jobResetDaily
	jobResetMonthly
)

func (k jobKind) String() string {
	switch k {
	case jobBudget:
		return "budget"
	case jobDayparting:
		return "dayparting"
	case jobResetDaily:
		return "daily-reset"
	default:
		return "monthly-reset"
	}
}

// Enforcer drives the enforcement pipeline. Each job entry point snapshots
// the brands, evaluates their campaigns through the activation
// decider and applies transitions through the state machine. Jobs are
// idempotent: re-running with no intervening spend produces the same state.
// Brands are processed in parallel, but a per-brand lock keeps ticks and
// resets from concurrently deciding opposite transitions for one campaign.
// A single campaign's failure is logged and skipped; only failing to fetch
// the working set fails a run.
type Enforcer struct {
	repo     port.CampaignRepository
	ledger   *Ledger
	machine  *StateMachine
	notifier port.Notifier
	clock    port.Clock
	logger   *slog.Logger

	maxParallel int

	brandMu    sync.Mutex
	brandLocks map[int64]*sync.Mutex
}

// NewEnforcer wires the enforcement pipeline. maxParallel bounds how many
// brands are evaluated concurrently; values below 1 mean serial.
func NewEnforcer(repo port.CampaignRepository, ledger *Ledger, machine *StateMachine, notifier port.Notifier, clock port.Clock, logger *slog.Logger, maxParallel int) *Enforcer {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Enforcer{
		repo:        repo,
		ledger:      ledger,
		machine:     machine,
		notifier:    notifier,
		clock:       clock,
		logger:      logger,
		maxParallel: maxParallel,
		brandLocks:  make(map[int64]*sync.Mutex),
	}
}

// RecordSpend implements the ingestion entry point of port.Enforcement.
func (e *Enforcer) RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal, date time.Time, description string) (int64, error) {
	return e.ledger.RecordSpend(ctx, campaignID, amount, date, description)
}

// ActivateCampaign is the external activation command.
func (e *Enforcer) ActivateCampaign(ctx context.Context, campaignID int64) error {
	return e.machine.Activate(ctx, campaignID, domain.ReasonAdmin)
}

// PauseCampaign is the external pause command.
func (e *Enforcer) PauseCampaign(ctx context.Context, campaignID int64) error {
	return e.machine.Pause(ctx, campaignID, domain.ReasonAdmin)
}

// CompleteCampaign administratively ends a campaign.
func (e *Enforcer) CompleteCampaign(ctx context.Context, campaignID int64) error {
	return e.machine.Complete(ctx, campaignID)
}

// CampaignSummary reports spend against limits for one campaign.
func (e *Enforcer) CampaignSummary(ctx context.Context, campaignID int64) (*port.CampaignSummary, error) {
	return e.ledger.CampaignSummary(ctx, campaignID)
}

// BrandSummary reports spend against limits for one brand.
func (e *Enforcer) BrandSummary(ctx context.Context, brandID int64) (*port.BrandSummary, error) {
	return e.ledger.BrandSummary(ctx, brandID)
}

// EnforceBudgets runs the budget enforcement tick over all brands.
func (e *Enforcer) EnforceBudgets(ctx context.Context) (*port.TickReport, error) {
	return e.run(ctx, jobBudget)
}

// EnforceDayparting runs the fast tick over campaigns carrying a schedule.
func (e *Enforcer) EnforceDayparting(ctx context.Context) (*port.TickReport, error) {
	return e.run(ctx, jobDayparting)
}

// ResetDaily re-evaluates paused campaigns at the day boundary. The spend
// log is never mutated; budgets "reset" because the daily windowed queries
// roll over to the new date.
func (e *Enforcer) ResetDaily(ctx context.Context) (*port.TickReport, error) {
	return e.run(ctx, jobResetDaily)
}

// ResetMonthly re-evaluates paused campaigns at the month boundary.
func (e *Enforcer) ResetMonthly(ctx context.Context) (*port.TickReport, error) {
	return e.run(ctx, jobResetMonthly)
}

// tally accumulates a report across concurrently processed brands.
type tally struct {
	campaigns atomic.Int64
	paused    atomic.Int64
	activated atomic.Int64
	errs      atomic.Int64
}

func (e *Enforcer) run(ctx context.Context, kind jobKind) (*port.TickReport, error) {
	// Snapshot the working set once; the pass operates on this value even
	// if brands change mid-tick.
	brands, err := e.repo.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s pass: listing brands: %w", kind, err)
	}

	var t tally
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxParallel)
	for _, brand := range brands {
		brand := brand
		g.Go(func() error {
			lock := e.brandLock(brand.ID)
			lock.Lock()
			defer lock.Unlock()
			e.processBrand(gctx, brand, kind, &t)
			return nil
		})
	}
	_ = g.Wait()

	rep := &port.TickReport{
		At:        e.clock.Now(),
		Brands:    len(brands),
		Campaigns: int(t.campaigns.Load()),
		Paused:    int(t.paused.Load()),
		Activated: int(t.activated.Load()),
		Errors:    int(t.errs.Load()),
	}
	e.logger.Info("enforcement pass finished",
		slog.String("job", kind.String()),
		slog.Int("brands", rep.Brands),
		slog.Int("campaigns", rep.Campaigns),
		slog.Int("paused", rep.Paused),
		slog.Int("activated", rep.Activated),
		slog.Int("errors", rep.Errors))
	return rep, nil
}

func (e *Enforcer) processBrand(ctx context.Context, brand domain.Brand, kind jobKind, t *tally) {
	if ctx.Err() != nil {
		return
	}
	now := e.clock.Now()

	// Enforcement ticks short-circuit a brand that is switched off or has
	// exhausted its own budget: every running campaign under it is paused
	// at once and the per-campaign evaluation is skipped for this tick.
	// Resets never touch a deactivated brand's campaigns.
	if kind == jobBudget || kind == jobDayparting {
		if !brand.IsActive {
			e.pauseBrandCampaigns(ctx, brand, domain.ReasonBrandInactive, t)
			return
		}
		ok, err := e.brandBudgetAvailable(ctx, brand, now)
		if err != nil {
			e.logger.Error("brand budget check failed, skipping brand until next tick",
				slog.Int64("brand_id", brand.ID), slog.Any("error", err))
			t.errs.Add(1)
			return
		}
		if !ok {
			e.pauseBrandCampaigns(ctx, brand, domain.ReasonBrandBudget, t)
			e.notifier.BrandBudgetExceeded(domain.BudgetAlert{
				ID:      uuid.NewString(),
				BrandID: brand.ID,
				Reason:  domain.ReasonBrandBudget,
				At:      now,
			})
			return
		}
	} else if !brand.IsActive {
		return
	}

	campaigns, err := e.repo.ListCampaignsByBrand(ctx, brand.ID)
	if err != nil {
		e.logger.Error("listing brand campaigns failed",
			slog.Int64("brand_id", brand.ID), slog.Any("error", err))
		t.errs.Add(1)
		return
	}

	for _, c := range campaigns {
		if ctx.Err() != nil {
			return
		}
		if !inWorkingSet(c, kind) {
			continue
		}
		t.campaigns.Add(1)
		e.evaluateCampaign(ctx, c, brand, kind, t)
	}
}

// inWorkingSet filters the per-campaign loop by job: enforcement ticks only
// consider running campaigns (the dayparting tick further restricts to
// schedule carriers), resets only consider paused ones. Draft and completed
// campaigns are never part of any working set.
func inWorkingSet(c domain.Campaign, kind jobKind) bool {
	switch kind {
	case jobBudget:
		return c.Status == domain.StatusActive
	case jobDayparting:
		return c.Status == domain.StatusActive && c.ScheduleID != nil
	default:
		return c.Status == domain.StatusPaused
	}
}

func (e *Enforcer) evaluateCampaign(ctx context.Context, c domain.Campaign, brand domain.Brand, kind jobKind, t *tally) {
	now := e.clock.Now()

	var sched *domain.DaypartingSchedule
	if c.ScheduleID != nil {
		var err error
		sched, err = e.repo.GetSchedule(ctx, *c.ScheduleID)
		if err != nil {
			e.campaignError(c.ID, "loading schedule", err, t)
			return
		}
		if sched == nil {
			e.campaignError(c.ID, "loading schedule", fmt.Errorf("%w: schedule %d", port.ErrNotFound, *c.ScheduleID), t)
			return
		}
	}
	snap, err := e.ledger.Snapshot(ctx, c, brand, now)
	if err != nil {
		e.campaignError(c.ID, "deriving budget snapshot", err, t)
		return
	}

	verdict, reason := domain.Decide(c, brand, sched, snap, now)
	switch verdict {
	case domain.Pause:
		if err := e.machine.Pause(ctx, c.ID, reason); err != nil {
			if !errors.Is(err, port.ErrStale) {
				e.campaignError(c.ID, "applying pause", err, t)
			}
			return
		}
		t.paused.Add(1)
	case domain.Activate:
		tag := domain.ReasonDailyReset
		if kind == jobResetMonthly {
			tag = domain.ReasonMonthlyReset
		}
		if err := e.machine.Activate(ctx, c.ID, tag); err != nil {
			// Eligibility is re-checked at apply time; a campaign that
			// became ineligible in between is simply left paused.
			if !errors.Is(err, port.ErrStale) && !errors.Is(err, port.ErrIneligible) {
				e.campaignError(c.ID, "applying activation", err, t)
			}
			return
		}
		t.activated.Add(1)
	}
}

func (e *Enforcer) pauseBrandCampaigns(ctx context.Context, brand domain.Brand, reason domain.Reason, t *tally) {
	campaigns, err := e.repo.ListCampaignsByBrand(ctx, brand.ID)
	if err != nil {
		e.logger.Error("listing brand campaigns failed",
			slog.Int64("brand_id", brand.ID), slog.Any("error", err))
		t.errs.Add(1)
		return
	}
	for _, c := range campaigns {
		if c.Status != domain.StatusActive {
			continue
		}
		t.campaigns.Add(1)
		if err := e.machine.Pause(ctx, c.ID, reason); err != nil {
			if !errors.Is(err, port.ErrStale) {
				e.campaignError(c.ID, "applying brand-level pause", err, t)
			}
			continue
		}
		t.paused.Add(1)
	}
}

func (e *Enforcer) brandBudgetAvailable(ctx context.Context, brand domain.Brand, now time.Time) (bool, error) {
	year, month := domain.MonthOf(now)
	daily, err := e.ledger.BrandDailySpend(ctx, brand.ID, now)
	if err != nil {
		return false, err
	}
	monthly, err := e.ledger.BrandMonthlySpend(ctx, brand.ID, year, month)
	if err != nil {
		return false, err
	}
	return brand.DailyBudget.Sub(daily).IsPositive() && brand.MonthlyBudget.Sub(monthly).IsPositive(), nil
}

func (e *Enforcer) campaignError(campaignID int64, op string, err error, t *tally) {
	e.logger.Error("campaign evaluation skipped",
		slog.Int64("campaign_id", campaignID),
		slog.String("op", op),
		slog.Any("error", err))
	t.errs.Add(1)
}

func (e *Enforcer) brandLock(id int64) *sync.Mutex {
	e.brandMu.Lock()
	defer e.brandMu.Unlock()
	lock, ok := e.brandLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		e.brandLocks[id] = lock
	}
	return lock
}
