package models

import "time"

type ScheduleKind string

const (
	ScheduleDaily    ScheduleKind = "daily"
	ScheduleWeekly   ScheduleKind = "weekly"
	ScheduleXPerDay  ScheduleKind = "x_per_day"
	ScheduleXPerWeek ScheduleKind = "x_per_week"
)

// Schedule pairs a schedule kind with its goal target. Target is only
// meaningful for the x_per_day and x_per_week kinds; GoalTarget folds the
// daily/weekly kinds down to a target of 1.
type Schedule struct {
	Kind   ScheduleKind `json:"kind"`
	Target int          `json:"target,omitempty"`
}

func Daily() Schedule  { return Schedule{Kind: ScheduleDaily} }
func Weekly() Schedule { return Schedule{Kind: ScheduleWeekly} }

func XPerDay(target int) Schedule  { return Schedule{Kind: ScheduleXPerDay, Target: target} }
func XPerWeek(target int) Schedule { return Schedule{Kind: ScheduleXPerWeek, Target: target} }

// Normalize repairs schedules read from untrusted storage: unknown kinds
// fall back to daily, non-positive targets clamp to 1.
func (s Schedule) Normalize() Schedule {
	switch s.Kind {
	case ScheduleDaily, ScheduleWeekly:
		s.Target = 0
	case ScheduleXPerDay, ScheduleXPerWeek:
		if s.Target < 1 {
			s.Target = 1
		}
	default:
		return Schedule{Kind: ScheduleDaily}
	}
	return s
}

// GoalTarget returns the number of completions needed in the schedule's
// period, never less than 1.
func (s Schedule) GoalTarget() int {
	switch s.Kind {
	case ScheduleXPerDay, ScheduleXPerWeek:
		if s.Target < 1 {
			return 1
		}
		return s.Target
	default:
		return 1
	}
}

// DailyScoped reports whether the schedule's progress counter lives in the
// current day (as opposed to the current week).
func (s Schedule) DailyScoped() bool {
	return s.Kind == ScheduleDaily || s.Kind == ScheduleXPerDay
}

func (s Schedule) WeeklyScoped() bool {
	return s.Kind == ScheduleWeekly || s.Kind == ScheduleXPerWeek
}

// Habit represents a recurring practice the pet rewards
type Habit struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Schedule            Schedule   `json:"schedule"`
	CompletedCountToday int        `json:"completed_count_today"`
	CompletedThisWeek   int        `json:"completed_this_week"`
	LastCompletedDate   *time.Time `json:"last_completed_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	ArchivedAt          *time.Time `json:"archived_at,omitempty"`
}
