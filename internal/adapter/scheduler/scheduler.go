package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"adpacer/internal/config/configs"
	"adpacer/internal/core/port"
)

// Scheduler is the external timer that drives the four enforcement jobs:
// the budget tick, the dayparting tick, and the daily and monthly resets.
// Each job is an idempotent entry point on the engine, so a job firing
// early, late or twice cannot corrupt state. Stop waits for in-flight runs
// to finish.
type Scheduler struct {
	engine port.Enforcement
	clock  port.Clock
	cfg    configs.Enforcer
	logger *slog.Logger

	quit chan struct{}
	wg   sync.WaitGroup
}

// New creates a scheduler over the enforcement engine.
func New(engine port.Enforcement, clock port.Clock, cfg configs.Enforcer, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		engine: engine,
		clock:  clock,
		cfg:    cfg,
		logger: logger,
		quit:   make(chan struct{}),
	}
}

// Start launches the four job loops.
func (s *Scheduler) Start() {
	s.wg.Add(4)
	go s.every(s.cfg.BudgetInterval, "budget", s.engine.EnforceBudgets)
	go s.every(s.cfg.DaypartingInterval, "dayparting", s.engine.EnforceDayparting)
	go s.atBoundary("daily-reset", nextDayStart, s.engine.ResetDaily)
	go s.atBoundary("monthly-reset", nextMonthStart, s.engine.ResetMonthly)
	s.logger.Info("enforcement scheduler started",
		slog.Duration("budget_interval", s.cfg.BudgetInterval),
		slog.Duration("dayparting_interval", s.cfg.DaypartingInterval))
}

// Stop terminates the job loops and waits for running jobs to return.
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
	s.logger.Info("enforcement scheduler stopped")
}

func (s *Scheduler) every(interval time.Duration, name string, job func(context.Context) (*port.TickReport, error)) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.runJob(name, job)
		case <-s.quit:
			return
		}
	}
}

func (s *Scheduler) atBoundary(name string, next func(time.Time) time.Time, job func(context.Context) (*port.TickReport, error)) {
	defer s.wg.Done()
	for {
		boundary := next(s.clock.Now())
		s.logger.Info("reset scheduled", slog.String("job", name), slog.Time("at", boundary))
		select {
		case <-time.After(boundary.Sub(s.clock.Now())):
			s.runJob(name, job)
		case <-s.quit:
			return
		}
	}
}

func (s *Scheduler) runJob(name string, job func(context.Context) (*port.TickReport, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.JobTimeout)
	defer cancel()
	if _, err := job(ctx); err != nil {
		// A failed run is reported and retried on the next trigger; it
		// does not affect other jobs.
		s.logger.Error("job run failed", slog.String("job", name), slog.Any("error", err))
	}
}

// nextDayStart returns the first instant of the next UTC day.
func nextDayStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

// nextMonthStart returns 00:00 UTC on the 1st of the next month.
func nextMonthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
