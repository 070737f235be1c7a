package models

import "time"

type Species string

const (
	SpeciesCat     Species = "cat"
	SpeciesDog     Species = "dog"
	SpeciesBunny   Species = "bunny"
	SpeciesAxolotl Species = "axolotl"
)

const (
	StatMin = 0
	StatMax = 100

	// XPPerLevel is the flat level curve: level = xp/100 + 1.
	XPPerLevel = 100
)

// Pet is the single virtual companion whose stats react to habit activity.
// Energy, Hunger, and Cleanliness stay within [StatMin, StatMax]; Level is
// derived from XP and should not be written directly.
type Pet struct {
	Species     Species   `json:"species"`
	Energy      int       `json:"energy"`
	Hunger      int       `json:"hunger"`
	Cleanliness int       `json:"cleanliness"`
	Level       int       `json:"level"`
	XP          int       `json:"xp"`
	Coins       int       `json:"coins"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClampStat bounds a stat value to the [StatMin, StatMax] range.
func ClampStat(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

// LevelForXP computes the level implied by an xp total.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}
