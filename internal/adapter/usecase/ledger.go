package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// Ledger maintains running daily and monthly spend totals per campaign and
// per brand on top of the append-only spend log. Totals are cached and
// invalidated on every successful append; the log remains the source of
// truth and every cached value is reconstructible from it. Appends for the
// same campaign and date are serialized through per-key locks so concurrent
// recording never loses updates.
type Ledger struct {
	spends    port.SpendRepository
	campaigns port.CampaignRepository
	clock     port.Clock

	mu     sync.RWMutex
	totals map[totalKey]decimal.Decimal
	gens   map[totalKey]uint64

	keysMu sync.Mutex
	keys   map[totalKey]*sync.Mutex
}

// totalKey addresses one cached aggregate: a campaign's or brand's spend for
// one day (day > 0) or one month (day == 0).
type totalKey struct {
	brand bool
	id    int64
	year  int
	month time.Month
	day   int
}

func dailyKey(brand bool, id int64, date time.Time) totalKey {
	return totalKey{brand: brand, id: id, year: date.Year(), month: date.Month(), day: date.Day()}
}

func monthlyKey(brand bool, id int64, year int, month time.Month) totalKey {
	return totalKey{brand: brand, id: id, year: year, month: month}
}

// NewLedger creates a BudgetLedger over the given spend log and campaign
// store.
func NewLedger(spends port.SpendRepository, campaigns port.CampaignRepository, clock port.Clock) *Ledger {
	return &Ledger{
		spends:    spends,
		campaigns: campaigns,
		clock:     clock,
		totals:    make(map[totalKey]decimal.Decimal),
		gens:      make(map[totalKey]uint64),
		keys:      make(map[totalKey]*sync.Mutex),
	}
}

// RecordSpend validates and appends one spend record, then invalidates the
// cached daily and monthly totals of the campaign and its owning brand.
func (l *Ledger) RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal, date time.Time, description string) (int64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: spend amount %s is negative", port.ErrValidation, amount)
	}
	c, err := l.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, fmt.Errorf("%w: campaign %d", port.ErrNotFound, campaignID)
	}
	day := domain.DateOf(date)

	// Serialize appends per campaign-date so a concurrent reader started
	// after either append observes both.
	lk := l.lockFor(dailyKey(false, campaignID, day))
	lk.Lock()
	defer lk.Unlock()

	id, err := l.spends.AppendSpend(ctx, domain.Spend{
		CampaignID:  campaignID,
		Amount:      amount,
		Date:        day,
		Description: description,
		CreatedAt:   l.clock.Now(),
	})
	if err != nil {
		return 0, err
	}
	l.invalidate(
		dailyKey(false, campaignID, day),
		monthlyKey(false, campaignID, day.Year(), day.Month()),
		dailyKey(true, c.BrandID, day),
		monthlyKey(true, c.BrandID, day.Year(), day.Month()),
	)
	return id, nil
}

// DailySpend returns the campaign's total spend on the given date.
func (l *Ledger) DailySpend(ctx context.Context, campaignID int64, date time.Time) (decimal.Decimal, error) {
	day := domain.DateOf(date)
	return l.sum(dailyKey(false, campaignID, day), func() (decimal.Decimal, error) {
		return l.spends.CampaignDailySpend(ctx, campaignID, day)
	})
}

// MonthlySpend returns the campaign's total spend in the given month.
func (l *Ledger) MonthlySpend(ctx context.Context, campaignID int64, year int, month time.Month) (decimal.Decimal, error) {
	return l.sum(monthlyKey(false, campaignID, year, month), func() (decimal.Decimal, error) {
		return l.spends.CampaignMonthlySpend(ctx, campaignID, year, month)
	})
}

// BrandDailySpend returns the summed spend of all the brand's campaigns on
// the given date.
func (l *Ledger) BrandDailySpend(ctx context.Context, brandID int64, date time.Time) (decimal.Decimal, error) {
	day := domain.DateOf(date)
	return l.sum(dailyKey(true, brandID, day), func() (decimal.Decimal, error) {
		return l.spends.BrandDailySpend(ctx, brandID, day)
	})
}

// BrandMonthlySpend returns the summed spend of all the brand's campaigns in
// the given month.
func (l *Ledger) BrandMonthlySpend(ctx context.Context, brandID int64, year int, month time.Month) (decimal.Decimal, error) {
	return l.sum(monthlyKey(true, brandID, year, month), func() (decimal.Decimal, error) {
		return l.spends.BrandMonthlySpend(ctx, brandID, year, month)
	})
}

// Snapshot derives the remaining-budget figures for one campaign and its
// owning brand as of now. Limits minus windowed spend; nothing is stored.
func (l *Ledger) Snapshot(ctx context.Context, c domain.Campaign, brand domain.Brand, now time.Time) (domain.BudgetSnapshot, error) {
	day := domain.DateOf(now)
	year, month := domain.MonthOf(now)

	var snap domain.BudgetSnapshot
	brandDaily, err := l.BrandDailySpend(ctx, brand.ID, day)
	if err != nil {
		return snap, err
	}
	brandMonthly, err := l.BrandMonthlySpend(ctx, brand.ID, year, month)
	if err != nil {
		return snap, err
	}
	daily, err := l.DailySpend(ctx, c.ID, day)
	if err != nil {
		return snap, err
	}
	monthly, err := l.MonthlySpend(ctx, c.ID, year, month)
	if err != nil {
		return snap, err
	}
	snap.BrandDailyRemaining = brand.DailyBudget.Sub(brandDaily)
	snap.BrandMonthlyRemaining = brand.MonthlyBudget.Sub(brandMonthly)
	snap.DailyRemaining = c.DailyBudgetLimit(brand).Sub(daily)
	snap.MonthlyRemaining = c.MonthlyBudgetLimit(brand).Sub(monthly)
	return snap, nil
}

// CampaignSummary reports the campaign's current spend against its
// effective limits.
func (l *Ledger) CampaignSummary(ctx context.Context, campaignID int64) (*port.CampaignSummary, error) {
	c, err := l.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %d", port.ErrNotFound, campaignID)
	}
	brand, err := l.campaigns.GetBrand(ctx, c.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, fmt.Errorf("%w: brand %d", port.ErrNotFound, c.BrandID)
	}
	now := l.clock.Now()
	year, month := domain.MonthOf(now)
	daily, err := l.DailySpend(ctx, c.ID, now)
	if err != nil {
		return nil, err
	}
	monthly, err := l.MonthlySpend(ctx, c.ID, year, month)
	if err != nil {
		return nil, err
	}
	dailyLimit := c.DailyBudgetLimit(*brand)
	monthlyLimit := c.MonthlyBudgetLimit(*brand)
	return &port.CampaignSummary{
		CampaignID:       c.ID,
		Name:             c.Name,
		BrandID:          c.BrandID,
		Status:           string(c.Status),
		DailySpend:       daily,
		MonthlySpend:     monthly,
		DailyLimit:       dailyLimit,
		MonthlyLimit:     monthlyLimit,
		DailyRemaining:   dailyLimit.Sub(daily),
		MonthlyRemaining: monthlyLimit.Sub(monthly),
	}, nil
}

// BrandSummary reports the brand's current spend against its budgets.
func (l *Ledger) BrandSummary(ctx context.Context, brandID int64) (*port.BrandSummary, error) {
	brand, err := l.campaigns.GetBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, fmt.Errorf("%w: brand %d", port.ErrNotFound, brandID)
	}
	now := l.clock.Now()
	year, month := domain.MonthOf(now)
	daily, err := l.BrandDailySpend(ctx, brand.ID, now)
	if err != nil {
		return nil, err
	}
	monthly, err := l.BrandMonthlySpend(ctx, brand.ID, year, month)
	if err != nil {
		return nil, err
	}
	return &port.BrandSummary{
		BrandID:          brand.ID,
		Name:             brand.Name,
		IsActive:         brand.IsActive,
		DailySpend:       daily,
		MonthlySpend:     monthly,
		DailyBudget:      brand.DailyBudget,
		MonthlyBudget:    brand.MonthlyBudget,
		DailyRemaining:   brand.DailyBudget.Sub(daily),
		MonthlyRemaining: brand.MonthlyBudget.Sub(monthly),
	}, nil
}

// sum returns the cached total for key, loading it through fetch on a miss.
// A load racing an invalidation is discarded instead of cached, so a total
// can never mask an append that completed before the read began.
func (l *Ledger) sum(key totalKey, fetch func() (decimal.Decimal, error)) (decimal.Decimal, error) {
	l.mu.RLock()
	v, ok := l.totals[key]
	gen := l.gens[key]
	l.mu.RUnlock()
	if ok {
		return v, nil
	}
	v, err := fetch()
	if err != nil {
		return decimal.Zero, err
	}
	l.mu.Lock()
	if l.gens[key] == gen {
		l.totals[key] = v
	}
	l.mu.Unlock()
	return v, nil
}

func (l *Ledger) invalidate(keys ...totalKey) {
	l.mu.Lock()
	for _, k := range keys {
		delete(l.totals, k)
		l.gens[k]++
	}
	l.mu.Unlock()
}

func (l *Ledger) lockFor(key totalKey) *sync.Mutex {
	l.keysMu.Lock()
	defer l.keysMu.Unlock()
	lk, ok := l.keys[key]
	if !ok {
		lk = &sync.Mutex{}
		l.keys[key] = lk
	}
	return lk
}
