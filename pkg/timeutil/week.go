package timeutil

import (
	"math"
	"time"
)

// Week is the interval between two meetups.
const Week = 7 * 24 * time.Hour

// Midnight truncates t to a UTC calendar date. Announcement math only ever
// cares about the date portion, so every computation normalizes through
// here first.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextSunday returns the first Sunday on or after t. When t already falls
// on a Sunday it is returned unchanged (after midnight normalization).
func NextSunday(t time.Time) time.Time {
	d := Midnight(t)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// WeeksBetween returns the whole-week offset from ref to d, rounded to the
// nearest week with ties away from zero. Negative when d precedes ref.
func WeeksBetween(ref, d time.Time) int {
	diff := Midnight(d).Sub(Midnight(ref))
	return int(math.Round(float64(diff) / float64(Week)))
}
