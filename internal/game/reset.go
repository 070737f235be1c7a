package game

import (
	"github.com/julianstephens/petlit/internal/clock"
	"github.com/julianstephens/petlit/internal/logger"
	"github.com/julianstephens/petlit/internal/models"
)

// ResetResult summarizes one RunResets pass.
type ResetResult struct {
	DailyApplied  bool `json:"daily_applied"`
	WeeklyApplied bool `json:"weekly_applied"`
	StreakAfter   int  `json:"streak_after"`
}

// RunResets performs the daily and weekly boundary passes. It is the only
// routine allowed to zero counters or decay stats for time-based reasons,
// and it is idempotent per boundary: calling it twice in the same period is
// a no-op the second time.
//
// A nil app state or pet means the install is not yet initialized; the call
// degrades to a no-op rather than failing.
func (e Engine) RunResets(st *models.AppState, habits []*models.Habit, p *models.Pet) ResetResult {
	if st == nil || p == nil {
		return ResetResult{}
	}

	now := e.Clock.Now()
	res := ResetResult{StreakAfter: st.CurrentStreak}

	if clock.CrossedDay(st.LastDailyReset, now) {
		dayDiff := clock.DaysBetween(st.LastDailyReset, now)
		yesterday := clock.StartOfDay(now).AddDate(0, 0, -1)

		hadCompletionYesterday := false
		for _, h := range habits {
			if h.LastCompletedDate != nil && clock.SameDay(*h.LastCompletedDate, yesterday) {
				hadCompletionYesterday = true
				break
			}
		}

		// A gap of two or more days always breaks the streak, regardless
		// of what happened on the first missed day.
		if dayDiff == 1 && hadCompletionYesterday {
			st.CurrentStreak++
		} else {
			st.CurrentStreak = 0
		}
		if st.CurrentStreak > st.LongestStreak {
			st.LongestStreak = st.CurrentStreak
		}

		for _, h := range habits {
			h.CompletedCountToday = 0
		}

		p.Hunger = models.ClampStat(p.Hunger - DecayHunger)
		p.Cleanliness = models.ClampStat(p.Cleanliness - DecayCleanliness)
		p.Energy = models.ClampStat(p.Energy - DecayEnergy)

		st.LastDailyReset = clock.StartOfDay(now)
		res.DailyApplied = true
		res.StreakAfter = st.CurrentStreak

		logger.Info("daily reset applied", "day_diff", dayDiff, "streak", st.CurrentStreak)
	}

	if clock.CrossedWeek(st.LastWeeklyReset, now) {
		for _, h := range habits {
			h.CompletedThisWeek = 0
		}
		st.LastWeeklyReset = clock.StartOfWeek(now)
		res.WeeklyApplied = true

		logger.Info("weekly reset applied")
	}

	return res
}
