package storage

import "github.com/julianstephens/petlit/internal/models"

// Provider persists the live app state: habits, the pet, the app-state
// singleton, and the inventory. The core engines never touch a Provider;
// the application shell loads records, runs the engines, and writes the
// results back.
//
// GetPet and GetAppState return (nil, nil) when the install has not been
// initialized yet; callers treat that as "not yet set up", not an error.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Singletons
	GetAppState() (*models.AppState, error)
	SaveAppState(models.AppState) error
	GetPet() (*models.Pet, error)
	SavePet(models.Pet) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error

	// Inventory
	GetAllItems() ([]models.InventoryItem, error)
	SaveItems([]models.InventoryItem) error

	// Utils
	GetConfigPath() string
}
