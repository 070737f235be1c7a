package game

// Reward bundle applied once per reached goal.
const (
	RewardCoins       = 5
	RewardXP          = 10
	RewardEnergy      = 5
	RewardHunger      = 5
	RewardCleanliness = 3
)

// Overnight decay applied by the daily reset.
const (
	DecayHunger      = 10
	DecayCleanliness = 8
	DecayEnergy      = 6
)
