package snapshot

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/petlit/internal/models"
)

// Habit is the lightweight per-habit record carried by a snapshot.
type Habit struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	Schedule            models.Schedule `json:"schedule"`
	CompletedCountToday int             `json:"completed_count_today"`
	CompletedThisWeek   int             `json:"completed_this_week"`
}

// Snapshot is an immutable point-in-time copy of habit and reset state,
// consumed by read-only projections that must never touch live records.
// Latest snapshot wins; there is no history.
type Snapshot struct {
	GeneratedAt     time.Time `json:"generated_at"`
	LastDailyReset  time.Time `json:"last_daily_reset"`
	LastWeeklyReset time.Time `json:"last_weekly_reset"`
	Habits          []Habit   `json:"habits"`
}

// Build copies the live state into a snapshot. Archived habits are skipped
// and the remainder is ordered by creation time, then id, so consumers see
// a stable sequence.
func Build(habits []*models.Habit, st *models.AppState, now time.Time) *Snapshot {
	if st == nil {
		return nil
	}

	snap := &Snapshot{
		GeneratedAt:     now,
		LastDailyReset:  st.LastDailyReset,
		LastWeeklyReset: st.LastWeeklyReset,
		Habits:          make([]Habit, 0, len(habits)),
	}

	for _, h := range habits {
		if h == nil || h.ArchivedAt != nil {
			continue
		}
		snap.Habits = append(snap.Habits, Habit{
			ID:                  h.ID,
			Title:               h.Title,
			CreatedAt:           h.CreatedAt,
			Schedule:            h.Schedule,
			CompletedCountToday: h.CompletedCountToday,
			CompletedThisWeek:   h.CompletedThisWeek,
		})
	}

	sort.Slice(snap.Habits, func(i, j int) bool {
		a, b := snap.Habits[i], snap.Habits[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return snap
}

// Encode serializes the snapshot. Timestamps use RFC 3339 with nanosecond
// precision via encoding/json, so a decode of the output is deep-equal to
// the input.
func Encode(s *Snapshot) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("nil snapshot")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a serialized snapshot. Malformed payloads return an error;
// stores turn that into "no snapshot" rather than surfacing it.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	for i := range s.Habits {
		s.Habits[i].Schedule = s.Habits[i].Schedule.Normalize()
	}
	return &s, nil
}
