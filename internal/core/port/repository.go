package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
)

// CampaignRepository is the persistence port for brands, campaigns and
// dayparting schedules. Brands and schedules are consumed read-only; the
// core mutates nothing but campaign status, and only through the
// compare-and-swap below. Lookups return nil without error when the entity
// does not exist.
type CampaignRepository interface {
	// ListBrands returns a snapshot of every brand.
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	// ListCampaignsByBrand returns all campaigns owned by the brand.
	ListCampaignsByBrand(ctx context.Context, brandID int64) ([]domain.Campaign, error)
	// GetBrand returns a brand by id.
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// GetSchedule returns a dayparting schedule by id.
	GetSchedule(ctx context.Context, id int64) (*domain.DaypartingSchedule, error)
	// SwapCampaignStatus atomically moves a campaign from one status to
	// another. It reports false when the campaign was not in the expected
	// status, which callers treat as a stale transition.
	SwapCampaignStatus(ctx context.Context, id int64, from, to domain.Status) (bool, error)
}

// SpendRepository is the persistence port for the append-only spend log and
// its windowed aggregates. The log is the source of truth for all budget
// totals; implementations must make AppendSpend atomic and the sums reflect
// every append that completed before the query began.
type SpendRepository interface {
	// AppendSpend stores one spend record and returns its id.
	AppendSpend(ctx context.Context, spend domain.Spend) (int64, error)
	// CampaignDailySpend sums the campaign's spend on the given date.
	CampaignDailySpend(ctx context.Context, campaignID int64, date time.Time) (decimal.Decimal, error)
	// CampaignMonthlySpend sums the campaign's spend over a calendar month.
	CampaignMonthlySpend(ctx context.Context, campaignID int64, year int, month time.Month) (decimal.Decimal, error)
	// BrandDailySpend sums spend across all of the brand's campaigns on the date.
	BrandDailySpend(ctx context.Context, brandID int64, date time.Time) (decimal.Decimal, error)
	// BrandMonthlySpend sums spend across all of the brand's campaigns in the month.
	BrandMonthlySpend(ctx context.Context, brandID int64, year int, month time.Month) (decimal.Decimal, error)
}
