package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

// Repository implements the campaign and spend persistence ports using
// pgxpool for PostgreSQL. Spends are append-only; campaign status changes
// go through a compare-and-swap UPDATE so a transition whose precondition
// no longer holds affects zero rows instead of clobbering newer state.
type Repository struct {
	pool *pgxpool.Pool
}

var (
	_ port.CampaignRepository = (*Repository)(nil)
	_ port.SpendRepository    = (*Repository)(nil)
)

// NewRepository returns a new repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const brandColumns = `id, name, daily_budget, monthly_budget, is_active, created_at, updated_at`

// ListBrands returns a snapshot of every brand ordered by id.
func (r *Repository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+brandColumns+` FROM brands ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBrand)
}

// GetBrand returns a brand by id.
func (r *Repository) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+brandColumns+` FROM brands WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBrand)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBrand(row pgx.CollectableRow) (domain.Brand, error) {
	var b domain.Brand
	err := row.Scan(&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const campaignColumns = `id, brand_id, name, status, daily_budget, monthly_budget, schedule_id, created_at, updated_at`

// ListCampaignsByBrand returns all campaigns owned by the brand.
func (r *Repository) ListCampaignsByBrand(ctx context.Context, brandID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE brand_id = $1 ORDER BY id`, brandID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetCampaign returns a campaign by id.
func (r *Repository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
	)
	err := row.Scan(&c.ID, &c.BrandID, &c.Name, &status, &c.DailyBudget, &c.MonthlyBudget, &c.ScheduleID, &c.CreatedAt, &c.UpdatedAt)
	c.Status = domain.Status(status)
	return c, err
}

// GetSchedule returns a dayparting schedule by id.
func (r *Repository) GetSchedule(ctx context.Context, id int64) (*domain.DaypartingSchedule, error) {
	var s domain.DaypartingSchedule
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, start_hour, end_hour, days_of_week, is_active, created_at, updated_at
		 FROM dayparting_schedules WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.StartHour, &s.EndHour, &s.DaysOfWeek, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SwapCampaignStatus atomically moves a campaign between statuses. Zero
// affected rows means the campaign was not in the expected status.
func (r *Repository) SwapCampaignStatus(ctx context.Context, id int64, from, to domain.Status) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		string(to), id, string(from))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// AppendSpend stores one spend record and returns its id.
func (r *Repository) AppendSpend(ctx context.Context, spend domain.Spend) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO spends (campaign_id, amount, date, description, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		spend.CampaignID, spend.Amount, spend.Date, spend.Description, spend.CreatedAt).Scan(&id)
	return id, err
}

// CampaignDailySpend sums the campaign's spend on the given date.
func (r *Repository) CampaignDailySpend(ctx context.Context, campaignID int64, date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM spends WHERE campaign_id = $1 AND date = $2`,
		campaignID, domain.DateOf(date)).Scan(&total)
	return total, err
}

// CampaignMonthlySpend sums the campaign's spend over a calendar month.
func (r *Repository) CampaignMonthlySpend(ctx context.Context, campaignID int64, year int, month time.Month) (decimal.Decimal, error) {
	first, next := monthWindow(year, month)
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM spends WHERE campaign_id = $1 AND date >= $2 AND date < $3`,
		campaignID, first, next).Scan(&total)
	return total, err
}

// BrandDailySpend sums spend across all of the brand's campaigns on the date.
func (r *Repository) BrandDailySpend(ctx context.Context, brandID int64, date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(s.amount), 0)
		 FROM spends s JOIN campaigns c ON c.id = s.campaign_id
		 WHERE c.brand_id = $1 AND s.date = $2`,
		brandID, domain.DateOf(date)).Scan(&total)
	return total, err
}

// BrandMonthlySpend sums spend across all of the brand's campaigns in the month.
func (r *Repository) BrandMonthlySpend(ctx context.Context, brandID int64, year int, month time.Month) (decimal.Decimal, error) {
	first, next := monthWindow(year, month)
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(s.amount), 0)
		 FROM spends s JOIN campaigns c ON c.id = s.campaign_id
		 WHERE c.brand_id = $1 AND s.date >= $2 AND s.date < $3`,
		brandID, first, next).Scan(&total)
	return total, err
}

// monthWindow returns the half-open [first of month, first of next month)
// date range.
func monthWindow(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, 0)
}
