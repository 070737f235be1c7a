package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeek_MondayAnchor(t *testing.T) {
	// 2026-01-07 is a Wednesday; its week starts Monday 2026-01-05.
	wed := time.Date(2026, 1, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), StartOfWeek(wed))

	// A Monday is its own week start.
	mon := time.Date(2026, 1, 5, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), StartOfWeek(mon))

	// Sunday belongs to the preceding Monday's week.
	sun := time.Date(2026, 1, 11, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), StartOfWeek(sun))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 1, 5, 23, 50, 0, 0, time.UTC)
	b := time.Date(2026, 1, 6, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 3, DaysBetween(a, a.AddDate(0, 0, 3)))
	assert.Equal(t, -1, DaysBetween(b, a))
}

func TestDaysBetween_DSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 is the spring-forward day: only 23h separate its midnight
	// from the next one. Still one calendar day apart.
	springEve := time.Date(2026, 3, 8, 9, 0, 0, 0, loc)
	springNext := time.Date(2026, 3, 9, 9, 0, 0, 0, loc)
	assert.True(t, CrossedDay(springEve, springNext))
	assert.Equal(t, 1, DaysBetween(springEve, springNext))

	// 2026-11-01 is the fall-back day (25h).
	fallEve := time.Date(2026, 11, 1, 9, 0, 0, 0, loc)
	fallNext := time.Date(2026, 11, 2, 9, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysBetween(fallEve, fallNext))

	// Multi-day spans straddling the transition stay exact.
	assert.Equal(t, 3, DaysBetween(time.Date(2026, 3, 6, 12, 0, 0, 0, loc), springNext))
}

func TestCrossedDay(t *testing.T) {
	last := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.False(t, CrossedDay(last, last.Add(23*time.Hour)))
	assert.True(t, CrossedDay(last, last.Add(25*time.Hour)))
}

func TestCrossedWeek(t *testing.T) {
	// Sunday night to Monday morning crosses the week boundary.
	sun := time.Date(2026, 1, 11, 22, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 1, 12, 2, 0, 0, 0, time.UTC)
	assert.True(t, CrossedWeek(sun, mon))
	assert.False(t, CrossedWeek(sun, sun.Add(time.Hour)))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 1, 7, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 1, 7, 23, 59, 59, 0, time.UTC)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.Add(time.Second)))
}

func TestFakeClock(t *testing.T) {
	c := NewFakeClock(time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC))
	c.Advance(time.Hour)
	assert.Equal(t, time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC), c.Now())
	c.Set(time.Date(2026, 1, 8, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, 8, c.Now().Day())
}
