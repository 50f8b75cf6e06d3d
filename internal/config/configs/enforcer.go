package configs

import "time"

// Enforcer configures the periodic enforcement jobs. The budget tick and
// the dayparting tick run on independent cadences; the daily and monthly
// resets fire at the UTC day and month boundaries and are not configurable
// beyond being disabled by stopping the scheduler.
type Enforcer struct {
	// BudgetInterval is the cadence of the budget enforcement tick.
	BudgetInterval time.Duration `env:"BUDGET_INTERVAL" envDefault:"5m"`
	// DaypartingInterval is the cadence of the dayparting tick.
	DaypartingInterval time.Duration `env:"DAYPARTING_INTERVAL" envDefault:"1m"`
	// JobTimeout bounds a single job run.
	JobTimeout time.Duration `env:"JOB_TIMEOUT" envDefault:"2m"`
	// MaxParallelBrands bounds concurrent per-brand evaluation.
	MaxParallelBrands int `env:"MAX_PARALLEL_BRANDS" envDefault:"8"`
	// NotifyBuffer is the size of the notification sink's event buffer.
	NotifyBuffer int `env:"NOTIFY_BUFFER" envDefault:"256"`
}
