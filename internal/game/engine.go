package game

import (
	"time"

	"github.com/julianstephens/petlit/internal/clock"
	"github.com/julianstephens/petlit/internal/logger"
	"github.com/julianstephens/petlit/internal/models"
)

// Engine applies habit completions and calendar resets to the live pet
// state. All methods are synchronous in-memory state transitions; the only
// collaborator is the injected clock.
type Engine struct {
	Clock clock.Clock
}

func New(c clock.Clock) Engine {
	return Engine{Clock: c}
}

// CompleteHabit records one completion tick for the habit and, when the
// tick reaches the schedule's period goal, applies the reward bundle to the
// pet. It returns true iff the reward fired.
//
// Ticking a habit past its goal is not an error: daily/weekly habits leave
// their counters untouched and return false, while the x-times kinds keep
// accruing progress without re-rewarding.
func (e Engine) CompleteHabit(h *models.Habit, p *models.Pet, st *models.AppState) bool {
	if h == nil || p == nil {
		return false
	}

	rewarded := false
	switch h.Schedule.Kind {
	case models.ScheduleDaily:
		if h.CompletedCountToday >= 1 {
			return false
		}
		h.CompletedCountToday++
		h.CompletedThisWeek++
		rewarded = true
	case models.ScheduleWeekly:
		if h.CompletedThisWeek >= 1 {
			return false
		}
		h.CompletedCountToday++
		h.CompletedThisWeek++
		rewarded = true
	case models.ScheduleXPerDay:
		h.CompletedCountToday++
		h.CompletedThisWeek++
		rewarded = h.CompletedCountToday == h.Schedule.GoalTarget()
	case models.ScheduleXPerWeek:
		h.CompletedCountToday++
		h.CompletedThisWeek++
		rewarded = h.CompletedThisWeek == h.Schedule.GoalTarget()
	default:
		return false
	}

	if !rewarded {
		return false
	}

	now := e.Clock.Now()
	h.LastCompletedDate = &now

	p.Coins += RewardCoins
	p.XP += RewardXP
	p.Energy = models.ClampStat(p.Energy + RewardEnergy)
	p.Hunger = models.ClampStat(p.Hunger + RewardHunger)
	p.Cleanliness = models.ClampStat(p.Cleanliness + RewardCleanliness)
	p.Level = models.LevelForXP(p.XP)

	if st != nil {
		e.seedStreak(st, now)
	}

	logger.Debug("habit rewarded", "habit", h.ID, "kind", h.Schedule.Kind, "xp", p.XP)
	return true
}

// seedStreak starts the streak on the first rewarded completion of a fresh
// day. LastStreakBonusDate guards against a second same-day completion
// re-seeding after the streak was zeroed by other means.
func (e Engine) seedStreak(st *models.AppState, now time.Time) {
	if !clock.SameDay(now, st.LastDailyReset) {
		return
	}
	if st.CurrentStreak != 0 {
		return
	}
	if st.LastStreakBonusDate != nil && clock.SameDay(*st.LastStreakBonusDate, now) {
		return
	}

	st.CurrentStreak = 1
	if st.LongestStreak < 1 {
		st.LongestStreak = 1
	}
	day := clock.StartOfDay(now)
	st.LastStreakBonusDate = &day
}
