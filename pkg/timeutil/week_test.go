package timeutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextSundayAdvances(t *testing.T) {
	// 2025-02-04 is a Tuesday.
	got := NextSunday(date(2025, time.February, 4))
	want := date(2025, time.February, 9)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNextSundayOnSunday(t *testing.T) {
	sunday := date(2025, time.February, 2)
	if got := NextSunday(sunday); !got.Equal(sunday) {
		t.Fatalf("expected zero advancement, got %v", got)
	}
}

func TestNextSundayDropsClock(t *testing.T) {
	late := time.Date(2025, time.February, 2, 23, 59, 0, 0, time.UTC)
	if got := NextSunday(late); !got.Equal(date(2025, time.February, 2)) {
		t.Fatalf("expected midnight of the same Sunday, got %v", got)
	}
}

func TestWeeksBetween(t *testing.T) {
	ref := date(2025, time.February, 2)
	cases := []struct {
		d    time.Time
		want int
	}{
		{date(2025, time.February, 2), 0},
		{date(2025, time.February, 9), 1},
		{date(2025, time.March, 2), 4},
		{date(2025, time.January, 26), -1},
		{date(2024, time.December, 29), -5},
	}
	for _, tc := range cases {
		if got := WeeksBetween(ref, tc.d); got != tc.want {
			t.Fatalf("WeeksBetween(%v): expected %d, got %d", tc.d, tc.want, got)
		}
	}
}

func TestWeeksBetweenRoundsMidweek(t *testing.T) {
	ref := date(2025, time.February, 2)
	// Four days out rounds up to one week, three days rounds down to zero.
	if got := WeeksBetween(ref, date(2025, time.February, 6)); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := WeeksBetween(ref, date(2025, time.February, 5)); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
