package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Seed inserts demo brands, dayparting schedules, campaigns and a week of
// spend history. Fixed ids with ON CONFLICT DO NOTHING keep re-seeding
// harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	brands := []struct {
		id      int64
		name    string
		daily   string
		monthly string
	}{
		{1, "Nike", "1000.00", "20000.00"},
		{2, "Adidas", "750.00", "15000.00"},
		{3, "Puma", "300.00", "6000.00"},
	}
	for _, b := range brands {
		_, err := db.Exec(ctx, `INSERT INTO brands (id, name, daily_budget, monthly_budget, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, true, now(), now()) ON CONFLICT DO NOTHING`,
			b.id, b.name, b.daily, b.monthly)
		if err != nil {
			return err
		}
	}

	// Business hours Mon-Fri plus an overnight window starting Fri and Sat.
	schedules := []struct {
		id         int64
		name       string
		start, end int
		days       []int
	}{
		{1, "Business hours", 9, 17, []int{0, 1, 2, 3, 4}},
		{2, "Late night", 22, 6, []int{4, 5}},
	}
	for _, s := range schedules {
		_, err := db.Exec(ctx, `INSERT INTO dayparting_schedules (id, name, start_hour, end_hour, days_of_week, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, true, now(), now()) ON CONFLICT DO NOTHING`,
			s.id, s.name, s.start, s.end, s.days)
		if err != nil {
			return err
		}
	}

	// Two campaigns per brand; the second carries a schedule and a daily
	// override below the brand ceiling.
	var campaignIDs []int64
	for i, b := range brands {
		baseID := int64(i*2 + 1)
		_, err := db.Exec(ctx, `INSERT INTO campaigns (id, brand_id, name, status, created_at, updated_at)
VALUES ($1, $2, $3, 'active', now(), now()) ON CONFLICT DO NOTHING`,
			baseID, b.id, fmt.Sprintf("%s Always-On", b.name))
		if err != nil {
			return err
		}
		scheduleID := int64(1 + i%2)
		_, err = db.Exec(ctx, `INSERT INTO campaigns (id, brand_id, name, status, daily_budget, schedule_id, created_at, updated_at)
VALUES ($1, $2, $3, 'active', $4, $5, now(), now()) ON CONFLICT DO NOTHING`,
			baseID+1, b.id, fmt.Sprintf("%s Daypart", b.name), "150.00", scheduleID)
		if err != nil {
			return err
		}
		campaignIDs = append(campaignIDs, baseID, baseID+1)
	}

	// A week of spend history per campaign.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, id := range campaignIDs {
		for d := 0; d < 7; d++ {
			date := today.AddDate(0, 0, -d)
			amount := decimal.NewFromFloat(5 + r.Float64()*45).Round(2)
			_, err := db.Exec(ctx, `INSERT INTO spends (campaign_id, amount, date, description, created_at)
VALUES ($1, $2, $3, 'seeded spend', now())`,
				id, amount, date)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
