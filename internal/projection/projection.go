package projection

import (
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/petlit/internal/clock"
	"github.com/julianstephens/petlit/internal/snapshot"
)

// PlaceholderTitle is shown for habits whose stored title is blank.
const PlaceholderTitle = "New Habit"

// HabitProgress is the projected state of one habit at a given instant.
type HabitProgress struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Count     int       `json:"count"`
	Target    int       `json:"target"`
	Done      bool      `json:"done"`
}

// Aggregate is the done/total/remaining rollup across all habits.
type Aggregate struct {
	Done      int `json:"done"`
	Total     int `json:"total"`
	Remaining int `json:"remaining"`
}

// WouldReset mirrors the reset engine's boundary comparisons without
// mutating anything: it answers whether a daily and/or weekly reset would
// fire if the reset pass ran at now.
func WouldReset(s *snapshot.Snapshot, now time.Time) (daily, weekly bool) {
	if s == nil {
		return false, false
	}
	return clock.CrossedDay(s.LastDailyReset, now), clock.CrossedWeek(s.LastWeeklyReset, now)
}

// Progress derives every habit's effective progress at now. Counters whose
// period boundary has passed project to zero; stored fields are never
// touched. A nil snapshot yields an empty slice.
func Progress(s *snapshot.Snapshot, now time.Time) []HabitProgress {
	if s == nil {
		return nil
	}

	wouldDaily, wouldWeekly := WouldReset(s, now)

	out := make([]HabitProgress, 0, len(s.Habits))
	for _, h := range s.Habits {
		sched := h.Schedule.Normalize()

		var count int
		if sched.DailyScoped() {
			count = h.CompletedCountToday
			if wouldDaily {
				count = 0
			}
		} else {
			count = h.CompletedThisWeek
			if wouldWeekly {
				count = 0
			}
		}

		target := sched.GoalTarget()
		out = append(out, HabitProgress{
			ID:        h.ID,
			Title:     normalizeTitle(h.Title),
			CreatedAt: h.CreatedAt,
			Count:     count,
			Target:    target,
			Done:      count >= target,
		})
	}
	return out
}

// Summarize rolls projected progress up into done/total/remaining.
func Summarize(s *snapshot.Snapshot, now time.Time) Aggregate {
	progress := Progress(s, now)

	agg := Aggregate{Total: len(progress)}
	for _, p := range progress {
		if p.Done {
			agg.Done++
		}
	}
	agg.Remaining = agg.Total - agg.Done
	if agg.Remaining < 0 {
		agg.Remaining = 0
	}
	return agg
}

// ListPreview returns up to limit habits ordered for display: incomplete
// before complete, then oldest first, then id as the final tie-break so the
// order is deterministic. A limit of zero yields an empty list.
func ListPreview(s *snapshot.Snapshot, now time.Time, limit int) []HabitProgress {
	if limit <= 0 {
		return nil
	}

	progress := Progress(s, now)
	sort.Slice(progress, func(i, j int) bool {
		a, b := progress[i], progress[j]
		if a.Done != b.Done {
			return !a.Done
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	if len(progress) > limit {
		progress = progress[:limit]
	}
	return progress
}

func normalizeTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return PlaceholderTitle
	}
	return title
}
