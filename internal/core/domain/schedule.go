package domain

import (
	"fmt"
	"slices"
	"time"
)

// DaypartingSchedule restricts campaign activity to specific hours and
// weekdays. Days are Monday-indexed (0=Monday .. 6=Sunday). Hours form a
// half-open window [StartHour, EndHour); StartHour > EndHour denotes an
// overnight window wrapping past midnight, and StartHour == EndHour means
// the whole day on the listed days. A schedule may be shared by many
// campaigns and is read-only for the enforcement core.
type DaypartingSchedule struct {
	ID         int64
	Name       string
	StartHour  int
	EndHour    int
	DaysOfWeek []int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks hour and weekday ranges.
func (s DaypartingSchedule) Validate() error {
	if s.StartHour < 0 || s.StartHour > 23 {
		return fmt.Errorf("start_hour %d out of range [0,23]", s.StartHour)
	}
	if s.EndHour < 0 || s.EndHour > 23 {
		return fmt.Errorf("end_hour %d out of range [0,23]", s.EndHour)
	}
	for _, d := range s.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("day_of_week %d out of range [0,6]", d)
		}
	}
	return nil
}

// ActiveAt reports whether the schedule allows activity at the given
// instant. The instant is evaluated in UTC. For overnight windows the
// weekday check applies to the window's start day only: a Friday 22:00-06:00
// window covers Saturday 00:00-06:00 when Friday is listed, not Saturday.
func (s DaypartingSchedule) ActiveAt(t time.Time) bool {
	if !s.IsActive {
		return false
	}
	t = t.UTC()
	hour := t.Hour()

	if s.StartHour <= s.EndHour {
		if !slices.Contains(s.DaysOfWeek, mondayIndexed(t.Weekday())) {
			return false
		}
		if s.StartHour == s.EndHour {
			// Whole-day window on the listed days.
			return true
		}
		return hour >= s.StartHour && hour < s.EndHour
	}

	// Overnight wrap. The pre-midnight half belongs to today's weekday, the
	// post-midnight half to yesterday's.
	if hour >= s.StartHour {
		return slices.Contains(s.DaysOfWeek, mondayIndexed(t.Weekday()))
	}
	if hour < s.EndHour {
		return slices.Contains(s.DaysOfWeek, mondayIndexed(t.AddDate(0, 0, -1).Weekday()))
	}
	return false
}

// mondayIndexed converts Go's Sunday-indexed weekday to the Monday-indexed
// convention used by schedules (0=Monday .. 6=Sunday).
func mondayIndexed(w time.Weekday) int {
	return (int(w) + 6) % 7
}
