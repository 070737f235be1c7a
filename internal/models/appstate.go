package models

import "time"

// AppState is the per-install singleton tracking reset bookkeeping and the
// completion streak. It is passed explicitly into every engine call; there
// is no ambient global lookup.
type AppState struct {
	LastDailyReset      time.Time  `json:"last_daily_reset"`
	LastWeeklyReset     time.Time  `json:"last_weekly_reset"`
	CurrentStreak       int        `json:"current_streak"`
	LongestStreak       int        `json:"longest_streak"`
	LastStreakBonusDate *time.Time `json:"last_streak_bonus_date,omitempty"`
	TutorialSeen        bool       `json:"tutorial_seen"`
	UserName            string     `json:"user_name"`
	SelectedPetSpecies  Species    `json:"selected_pet_species"`
}
