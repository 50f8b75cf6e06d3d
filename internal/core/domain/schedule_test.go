package domain

import (
	"testing"
	"time"
)

// 2024-06-03 is a Monday; the offsets below rely on that.
func day(weekday int, hour, minute int) time.Time {
	return time.Date(2024, time.June, 3+weekday, hour, minute, 0, 0, time.UTC)
}

func TestScheduleBusinessHours(t *testing.T) {
	s := DaypartingSchedule{
		StartHour:  9,
		EndHour:    17,
		DaysOfWeek: []int{0, 1, 2, 3, 4},
		IsActive:   true,
	}

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"monday window opens", day(0, 9, 0), true},
		{"monday last minute", day(0, 16, 59), true},
		{"monday window closes", day(0, 17, 0), false},
		{"monday before open", day(0, 8, 59), false},
		{"friday noon", day(4, 12, 0), true},
		{"saturday noon", day(5, 12, 0), false},
		{"sunday noon", day(6, 12, 0), false},
	}
	for _, tc := range cases {
		if got := s.ActiveAt(tc.at); got != tc.want {
			t.Errorf("%s: ActiveAt(%v) = %v, want %v", tc.name, tc.at, got, tc.want)
		}
	}
}

func TestScheduleOvernight(t *testing.T) {
	// Friday and Saturday nights, wrapping past midnight.
	s := DaypartingSchedule{
		StartHour:  22,
		EndHour:    6,
		DaysOfWeek: []int{4, 5},
		IsActive:   true,
	}

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"friday 23:00", day(4, 23, 0), true},
		{"saturday 03:00 belongs to friday night", day(5, 3, 0), true},
		{"sunday 03:00 belongs to saturday night", day(6, 3, 0), true},
		{"saturday 06:00 window closed", day(5, 6, 0), false},
		{"friday noon outside window", day(4, 12, 0), false},
		{"monday 03:00 belongs to sunday night", day(0, 3, 0), false},
		{"thursday 23:00 not listed", day(3, 23, 0), false},
	}
	for _, tc := range cases {
		if got := s.ActiveAt(tc.at); got != tc.want {
			t.Errorf("%s: ActiveAt(%v) = %v, want %v", tc.name, tc.at, got, tc.want)
		}
	}
}

func TestScheduleWholeDay(t *testing.T) {
	s := DaypartingSchedule{
		StartHour:  0,
		EndHour:    0,
		DaysOfWeek: []int{0},
		IsActive:   true,
	}
	if !s.ActiveAt(day(0, 0, 0)) || !s.ActiveAt(day(0, 23, 59)) {
		t.Error("equal start and end hours should cover the whole listed day")
	}
	if s.ActiveAt(day(1, 12, 0)) {
		t.Error("whole-day window must not leak into unlisted days")
	}
}

func TestScheduleDisabled(t *testing.T) {
	s := DaypartingSchedule{
		StartHour:  0,
		EndHour:    0,
		DaysOfWeek: []int{0, 1, 2, 3, 4, 5, 6},
		IsActive:   false,
	}
	if s.ActiveAt(day(2, 12, 0)) {
		t.Error("disabled schedule must never report active")
	}
}

func TestScheduleValidate(t *testing.T) {
	ok := DaypartingSchedule{StartHour: 9, EndHour: 17, DaysOfWeek: []int{0, 6}}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}

	bad := []DaypartingSchedule{
		{StartHour: -1, EndHour: 17},
		{StartHour: 9, EndHour: 24},
		{StartHour: 9, EndHour: 17, DaysOfWeek: []int{7}},
		{StartHour: 9, EndHour: 17, DaysOfWeek: []int{-1}},
	}
	for i, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: invalid schedule accepted", i)
		}
	}
}
