package scheduler

import (
	"testing"
	"time"
)

func TestNextDayStart(t *testing.T) {
	cases := []struct {
		now  time.Time
		want time.Time
	}{
		{
			time.Date(2024, time.June, 3, 12, 30, 0, 0, time.UTC),
			time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			// Already at midnight: the next boundary, not this one.
			time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		if got := nextDayStart(tc.now); !got.Equal(tc.want) {
			t.Errorf("nextDayStart(%v) = %v, want %v", tc.now, got, tc.want)
		}
	}
}

func TestNextMonthStart(t *testing.T) {
	cases := []struct {
		now  time.Time
		want time.Time
	}{
		{
			time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC),
			time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC),
			time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			// AddDate, not day arithmetic: month lengths differ.
			time.Date(2024, time.January, 31, 1, 0, 0, 0, time.UTC),
			time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		if got := nextMonthStart(tc.now); !got.Equal(tc.want) {
			t.Errorf("nextMonthStart(%v) = %v, want %v", tc.now, got, tc.want)
		}
	}
}
