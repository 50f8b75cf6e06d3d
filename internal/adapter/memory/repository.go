package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// Repository is a mutex-guarded in-memory implementation of both
// persistence ports. It backs the demo mode and the usecase tests. The
// spend slice is append-only, mirroring the durable spend log.
type Repository struct {
	mu          sync.RWMutex
	brands      map[int64]domain.Brand
	campaigns   map[int64]domain.Campaign
	schedules   map[int64]domain.DaypartingSchedule
	spends      []domain.Spend
	nextSpendID int64
}

var (
	_ port.CampaignRepository = (*Repository)(nil)
	_ port.SpendRepository    = (*Repository)(nil)
)

// NewRepository returns an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		brands:    make(map[int64]domain.Brand),
		campaigns: make(map[int64]domain.Campaign),
		schedules: make(map[int64]domain.DaypartingSchedule),
	}
}

// PutBrand inserts or replaces a brand.
func (r *Repository) PutBrand(b domain.Brand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brands[b.ID] = b
}

// PutCampaign inserts or replaces a campaign.
func (r *Repository) PutCampaign(c domain.Campaign) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[c.ID] = c
}

// PutSchedule inserts or replaces a dayparting schedule.
func (r *Repository) PutSchedule(s domain.DaypartingSchedule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules[s.ID] = s
}

// ListBrands returns all brands ordered by id.
func (r *Repository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListCampaignsByBrand returns the brand's campaigns ordered by id.
func (r *Repository) ListCampaignsByBrand(ctx context.Context, brandID int64) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Campaign
	for _, c := range r.campaigns {
		if c.BrandID == brandID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetBrand returns a brand by id, or nil when absent.
func (r *Repository) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.brands[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// GetCampaign returns a campaign by id, or nil when absent.
func (r *Repository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetSchedule returns a schedule by id, or nil when absent.
func (r *Repository) GetSchedule(ctx context.Context, id int64) (*domain.DaypartingSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schedules[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// SwapCampaignStatus atomically applies a status compare-and-swap.
func (r *Repository) SwapCampaignStatus(ctx context.Context, id int64, from, to domain.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok || c.Status != from {
		return false, nil
	}
	c.Status = to
	c.UpdatedAt = time.Now().UTC()
	r.campaigns[id] = c
	return true, nil
}

// AppendSpend stores one spend record and returns its id.
func (r *Repository) AppendSpend(ctx context.Context, spend domain.Spend) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSpendID++
	spend.ID = r.nextSpendID
	r.spends = append(r.spends, spend)
	return spend.ID, nil
}

// CampaignDailySpend sums a campaign's spend on one date.
func (r *Repository) CampaignDailySpend(ctx context.Context, campaignID int64, date time.Time) (decimal.Decimal, error) {
	day := domain.DateOf(date)
	return r.sumSpends(func(s domain.Spend) bool {
		return s.CampaignID == campaignID && s.Date.Equal(day)
	}), nil
}

// CampaignMonthlySpend sums a campaign's spend over one month.
func (r *Repository) CampaignMonthlySpend(ctx context.Context, campaignID int64, year int, month time.Month) (decimal.Decimal, error) {
	return r.sumSpends(func(s domain.Spend) bool {
		return s.CampaignID == campaignID && s.Date.Year() == year && s.Date.Month() == month
	}), nil
}

// BrandDailySpend sums spend across a brand's campaigns on one date.
func (r *Repository) BrandDailySpend(ctx context.Context, brandID int64, date time.Time) (decimal.Decimal, error) {
	day := domain.DateOf(date)
	return r.sumSpends(func(s domain.Spend) bool {
		return r.campaignBrand(s.CampaignID) == brandID && s.Date.Equal(day)
	}), nil
}

// BrandMonthlySpend sums spend across a brand's campaigns in one month.
func (r *Repository) BrandMonthlySpend(ctx context.Context, brandID int64, year int, month time.Month) (decimal.Decimal, error) {
	return r.sumSpends(func(s domain.Spend) bool {
		return r.campaignBrand(s.CampaignID) == brandID && s.Date.Year() == year && s.Date.Month() == month
	}), nil
}

func (r *Repository) sumSpends(match func(domain.Spend) bool) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, s := range r.spends {
		if match(s) {
			total = total.Add(s.Amount)
		}
	}
	return total
}

// campaignBrand resolves ownership; callers hold at least the read lock.
func (r *Repository) campaignBrand(campaignID int64) int64 {
	c, ok := r.campaigns[campaignID]
	if !ok {
		return 0
	}
	return c.BrandID
}
