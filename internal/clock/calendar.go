package clock

import (
	"math"
	"time"
)

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek truncates t to midnight of the most recent Monday.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b.In(a.Location())))
}

// DaysBetween returns the whole-day count between the start-of-day marks of
// from and to. Positive when to is after from. The elapsed time between two
// midnights is not always a multiple of 24h (DST transition days run 23h or
// 25h), so the hour count is rounded rather than truncated.
func DaysBetween(from, to time.Time) int {
	a := StartOfDay(from)
	b := StartOfDay(to)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// CrossedDay reports whether now has moved past the calendar day of last.
// It is the single boundary predicate shared by the reset and projection
// paths so the two cannot drift apart.
func CrossedDay(last, now time.Time) bool {
	return StartOfDay(now).After(StartOfDay(last))
}

// CrossedWeek reports whether now has moved past the calendar week of last.
func CrossedWeek(last, now time.Time) bool {
	return StartOfWeek(now).After(StartOfWeek(last))
}
