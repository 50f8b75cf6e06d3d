package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
	"adpacer/internal/core/port/mocks"
)

// fixedClock serves a settable instant to the usecase tests.
type fixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFixedClock(t time.Time) *fixedClock { return &fixedClock{t: t} }

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

var testDay = time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC) // Monday

// TestLedgerCachesTotals ensures a windowed total is fetched from the spend
// log once and served from cache afterwards.
func TestLedgerCachesTotals(t *testing.T) {
	spends := mocks.NewMockSpendRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	spends.EXPECT().
		CampaignDailySpend(mock.Anything, int64(1), domain.DateOf(testDay)).
		Return(decimal.NewFromInt(40), nil).
		Once()

	ledger := NewLedger(spends, campaigns, newFixedClock(testDay))

	for i := 0; i < 3; i++ {
		got, err := ledger.DailySpend(context.Background(), 1, testDay)
		if err != nil {
			t.Fatalf("DailySpend error: %v", err)
		}
		if !got.Equal(decimal.NewFromInt(40)) {
			t.Fatalf("DailySpend = %s, want 40", got)
		}
	}
}

// TestRecordSpendInvalidatesTotals ensures an append drops the cached totals
// so the next read reflects the new spend.
func TestRecordSpendInvalidatesTotals(t *testing.T) {
	spends := mocks.NewMockSpendRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	campaign := domain.Campaign{ID: 1, BrandID: 7, Status: domain.StatusActive}
	campaigns.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(&campaign, nil)

	day := domain.DateOf(testDay)
	spends.EXPECT().
		CampaignDailySpend(mock.Anything, int64(1), day).
		Return(decimal.NewFromInt(10), nil).
		Once()
	spends.EXPECT().
		AppendSpend(mock.Anything, mock.AnythingOfType("domain.Spend")).
		Return(int64(1), nil).
		Once()
	spends.EXPECT().
		CampaignDailySpend(mock.Anything, int64(1), day).
		Return(decimal.NewFromInt(35), nil).
		Once()

	ledger := NewLedger(spends, campaigns, newFixedClock(testDay))
	ctx := context.Background()

	before, err := ledger.DailySpend(ctx, 1, testDay)
	if err != nil {
		t.Fatalf("DailySpend error: %v", err)
	}
	if !before.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("DailySpend before append = %s, want 10", before)
	}

	if _, err := ledger.RecordSpend(ctx, 1, decimal.NewFromInt(25), testDay, "clicks"); err != nil {
		t.Fatalf("RecordSpend error: %v", err)
	}

	after, err := ledger.DailySpend(ctx, 1, testDay)
	if err != nil {
		t.Fatalf("DailySpend error: %v", err)
	}
	if !after.Equal(decimal.NewFromInt(35)) {
		t.Fatalf("DailySpend after append = %s, want 35", after)
	}
}

func TestRecordSpendRejectsNegativeAmount(t *testing.T) {
	spends := mocks.NewMockSpendRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	ledger := NewLedger(spends, campaigns, newFixedClock(testDay))

	_, err := ledger.RecordSpend(context.Background(), 1, decimal.NewFromInt(-5), testDay, "")
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRecordSpendUnknownCampaign(t *testing.T) {
	spends := mocks.NewMockSpendRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().
		GetCampaign(mock.Anything, int64(99)).
		Return(nil, nil).
		Once()

	ledger := NewLedger(spends, campaigns, newFixedClock(testDay))

	_, err := ledger.RecordSpend(context.Background(), 99, decimal.NewFromInt(5), testDay, "")
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestConcurrentRecordSpend ensures concurrent appends for the same campaign
// and date are all recorded and the derived total matches their sum.
func TestConcurrentRecordSpend(t *testing.T) {
	spends := mocks.NewMockSpendRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	campaign := domain.Campaign{ID: 1, BrandID: 7, Status: domain.StatusActive}
	campaigns.EXPECT().
		GetCampaign(mock.Anything, int64(1)).
		Return(&campaign, nil)

	// A minimal in-memory spend log behind the mock.
	var (
		mu     sync.Mutex
		nextID int64
		total  decimal.Decimal
	)
	spends.EXPECT().
		AppendSpend(mock.Anything, mock.AnythingOfType("domain.Spend")).
		RunAndReturn(func(ctx context.Context, spend domain.Spend) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			nextID++
			total = total.Add(spend.Amount)
			return nextID, nil
		})
	spends.EXPECT().
		CampaignDailySpend(mock.Anything, int64(1), domain.DateOf(testDay)).
		RunAndReturn(func(ctx context.Context, campaignID int64, date time.Time) (decimal.Decimal, error) {
			mu.Lock()
			defer mu.Unlock()
			return total, nil
		})

	ledger := NewLedger(spends, campaigns, newFixedClock(testDay))
	ctx := context.Background()

	const workers = 50
	amount := decimal.RequireFromString("2.50")
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.RecordSpend(ctx, 1, amount, testDay, ""); err != nil {
				t.Errorf("RecordSpend error: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := ledger.DailySpend(ctx, 1, testDay)
	if err != nil {
		t.Fatalf("DailySpend error: %v", err)
	}
	want := amount.Mul(decimal.NewFromInt(workers))
	if !got.Equal(want) {
		t.Fatalf("DailySpend after %d concurrent appends = %s, want %s", workers, got, want)
	}
}

// TestSnapshotDerivesRemainders checks limits minus windowed spend, with the
// campaign override replacing the inherited brand limit.
func TestSnapshotDerivesRemainders(t *testing.T) {
	spends := mocks.NewMockSpendRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)

	year, month := domain.MonthOf(testDay)
	spends.EXPECT().
		BrandDailySpend(mock.Anything, int64(7), domain.DateOf(testDay)).
		Return(decimal.NewFromInt(300), nil)
	spends.EXPECT().
		BrandMonthlySpend(mock.Anything, int64(7), year, month).
		Return(decimal.NewFromInt(1200), nil)
	spends.EXPECT().
		CampaignDailySpend(mock.Anything, int64(1), domain.DateOf(testDay)).
		Return(decimal.NewFromInt(120), nil)
	spends.EXPECT().
		CampaignMonthlySpend(mock.Anything, int64(1), year, month).
		Return(decimal.NewFromInt(450), nil)

	brand := domain.Brand{
		ID:            7,
		DailyBudget:   decimal.NewFromInt(1000),
		MonthlyBudget: decimal.NewFromInt(20000),
		IsActive:      true,
	}
	override := decimal.NewFromInt(150)
	campaign := domain.Campaign{ID: 1, BrandID: 7, Status: domain.StatusActive, DailyBudget: &override}

	ledger := NewLedger(spends, campaigns, newFixedClock(testDay))
	snap, err := ledger.Snapshot(context.Background(), campaign, brand, testDay)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}

	if !snap.BrandDailyRemaining.Equal(decimal.NewFromInt(700)) {
		t.Errorf("BrandDailyRemaining = %s, want 700", snap.BrandDailyRemaining)
	}
	if !snap.BrandMonthlyRemaining.Equal(decimal.NewFromInt(18800)) {
		t.Errorf("BrandMonthlyRemaining = %s, want 18800", snap.BrandMonthlyRemaining)
	}
	if !snap.DailyRemaining.Equal(decimal.NewFromInt(30)) {
		t.Errorf("DailyRemaining = %s, want 30 from the override", snap.DailyRemaining)
	}
	if !snap.MonthlyRemaining.Equal(decimal.NewFromInt(19550)) {
		t.Errorf("MonthlyRemaining = %s, want 19550 from the brand limit", snap.MonthlyRemaining)
	}
}
