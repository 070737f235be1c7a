package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/petlit/internal/clock"
	"github.com/julianstephens/petlit/internal/models"
)

func completedAt(t time.Time) *time.Time { return &t }

func TestRunResets_NoBoundaryNoop(t *testing.T) {
	e, _ := newEngineForTest()
	st := freshState(testNow)
	pet := freshPet()
	h := &models.Habit{ID: "h1", Schedule: models.Daily(), CompletedCountToday: 1, CompletedThisWeek: 1}

	res := e.RunResets(st, []*models.Habit{h}, pet)
	assert.False(t, res.DailyApplied)
	assert.False(t, res.WeeklyApplied)
	assert.Equal(t, 1, h.CompletedCountToday)
	assert.Equal(t, 80, pet.Hunger)
}

func TestRunResets_DayDiffOne_YesterdayCompleted_IncrementsStreak(t *testing.T) {
	e, fake := newEngineForTest()
	st := freshState(testNow)
	st.CurrentStreak = 3
	pet := freshPet()
	h := &models.Habit{
		ID:                  "h1",
		Schedule:            models.Daily(),
		CompletedCountToday: 1,
		CompletedThisWeek:   2,
		LastCompletedDate:   completedAt(testNow),
	}

	fake.Set(testNow.AddDate(0, 0, 1))
	res := e.RunResets(st, []*models.Habit{h}, pet)

	require.True(t, res.DailyApplied)
	assert.Equal(t, 4, st.CurrentStreak)
	assert.Equal(t, 4, st.LongestStreak)
	assert.Equal(t, 0, h.CompletedCountToday)
	assert.Equal(t, 2, h.CompletedThisWeek, "weekly counter untouched by daily pass")
	assert.Equal(t, 70, pet.Hunger)
	assert.Equal(t, 72, pet.Cleanliness)
	assert.Equal(t, 74, pet.Energy)
	assert.Equal(t, clock.StartOfDay(fake.Now()), st.LastDailyReset)
}

func TestRunResets_StreakSurvivesSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 is the US spring-forward day: only 23h separate its
	// midnight from the next one, so naive hour math undercounts the gap.
	sun := time.Date(2026, 3, 8, 9, 0, 0, 0, loc)
	mon := time.Date(2026, 3, 9, 9, 0, 0, 0, loc)

	fake := clock.NewFakeClock(sun)
	e := New(fake)
	st := freshState(sun)
	st.CurrentStreak = 3
	pet := freshPet()
	h := &models.Habit{
		ID:                  "h1",
		Schedule:            models.Daily(),
		CompletedCountToday: 1,
		LastCompletedDate:   completedAt(sun),
	}

	fake.Set(mon)
	res := e.RunResets(st, []*models.Habit{h}, pet)

	require.True(t, res.DailyApplied)
	assert.Equal(t, 4, st.CurrentStreak, "adjacent days across the transition")
	assert.Equal(t, 0, h.CompletedCountToday)
}

func TestRunResets_DayDiffOne_NoCompletion_BreaksStreak(t *testing.T) {
	e, fake := newEngineForTest()
	st := freshState(testNow)
	st.CurrentStreak = 3
	pet := freshPet()
	h := &models.Habit{ID: "h1", Schedule: models.Daily()}

	fake.Set(testNow.AddDate(0, 0, 1))
	res := e.RunResets(st, []*models.Habit{h}, pet)

	require.True(t, res.DailyApplied)
	assert.Equal(t, 0, st.CurrentStreak)
}

func TestRunResets_MultiDayGap_AlwaysBreaksStreak(t *testing.T) {
	e, fake := newEngineForTest()
	st := freshState(testNow)
	st.CurrentStreak = 9
	pet := freshPet()

	// Completed on the day before now: still broken, the gap rule wins.
	fake.Set(testNow.AddDate(0, 0, 3))
	h := &models.Habit{
		ID:                "h1",
		Schedule:          models.Daily(),
		LastCompletedDate: completedAt(testNow.AddDate(0, 0, 2)),
	}

	res := e.RunResets(st, []*models.Habit{h}, pet)
	require.True(t, res.DailyApplied)
	assert.Equal(t, 0, st.CurrentStreak)
}

func TestRunResets_WeeklyBoundary_ZeroesWeekCounters(t *testing.T) {
	e, fake := newEngineForTest()
	st := freshState(testNow)
	pet := freshPet()
	h := &models.Habit{ID: "h1", Schedule: models.XPerWeek(4), CompletedThisWeek: 3}

	// Jump to next Monday.
	fake.Set(time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC))
	res := e.RunResets(st, []*models.Habit{h}, pet)

	require.True(t, res.WeeklyApplied)
	require.True(t, res.DailyApplied, "both boundaries fire in one call")
	assert.Equal(t, 0, h.CompletedThisWeek)
	assert.Equal(t, clock.StartOfWeek(fake.Now()), st.LastWeeklyReset)
}

func TestRunResets_IdempotentPerBoundary(t *testing.T) {
	e, fake := newEngineForTest()
	st := freshState(testNow)
	pet := freshPet()
	h := &models.Habit{ID: "h1", Schedule: models.Daily(), CompletedCountToday: 1}

	fake.Set(testNow.AddDate(0, 0, 1))
	first := e.RunResets(st, []*models.Habit{h}, pet)
	require.True(t, first.DailyApplied)
	hungerAfter := pet.Hunger

	second := e.RunResets(st, []*models.Habit{h}, pet)
	assert.False(t, second.DailyApplied)
	assert.False(t, second.WeeklyApplied)
	assert.Equal(t, hungerAfter, pet.Hunger, "decay must not re-apply")
}

func TestRunResets_DecayClampsAtFloor(t *testing.T) {
	e, fake := newEngineForTest()
	st := freshState(testNow)
	pet := &models.Pet{Energy: 3, Hunger: 5, Cleanliness: 0, Level: 1}

	fake.Set(testNow.AddDate(0, 0, 1))
	e.RunResets(st, nil, pet)

	assert.Equal(t, 0, pet.Energy)
	assert.Equal(t, 0, pet.Hunger)
	assert.Equal(t, 0, pet.Cleanliness)
}

func TestRunResets_MissingSingletonsNoop(t *testing.T) {
	e, _ := newEngineForTest()
	h := &models.Habit{ID: "h1", Schedule: models.Daily(), CompletedCountToday: 1}

	res := e.RunResets(nil, []*models.Habit{h}, freshPet())
	assert.Equal(t, ResetResult{}, res)
	assert.Equal(t, 1, h.CompletedCountToday)

	res = e.RunResets(freshState(testNow), []*models.Habit{h}, nil)
	assert.Equal(t, ResetResult{}, res)
}

func TestRunResets_StatBoundsHold(t *testing.T) {
	e, fake := newEngineForTest()
	st := freshState(testNow)
	pet := freshPet()

	for i := 0; i < 30; i++ {
		fake.Advance(24 * time.Hour)
		e.RunResets(st, nil, pet)
		for _, v := range []int{pet.Energy, pet.Hunger, pet.Cleanliness} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
	}
}
