package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/petlit/internal/models"
)

type Store struct {
	Version  int                             `json:"version"`
	AppState *models.AppState                `json:"app_state,omitempty"`
	Pet      *models.Pet                     `json:"pet,omitempty"`
	Habits   map[string]models.Habit         `json:"habits"`
	Items    map[string]models.InventoryItem `json:"items"`
}

// JSONStore keeps the whole install in one JSON file.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Habits:  make(map[string]models.Habit),
		Items:   make(map[string]models.InventoryItem),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'petlit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Habits == nil {
		s.store.Habits = make(map[string]models.Habit)
	}
	if s.store.Items == nil {
		s.store.Items = make(map[string]models.InventoryItem)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetAppState() (*models.AppState, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	if s.store.AppState == nil {
		return nil, nil
	}
	st := *s.store.AppState
	return &st, nil
}

func (s *JSONStore) SaveAppState(st models.AppState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.AppState = &st
	return s.save()
}

func (s *JSONStore) GetPet() (*models.Pet, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	if s.store.Pet == nil {
		return nil, nil
	}
	p := *s.store.Pet
	return &p, nil
}

func (s *JSONStore) SavePet(p models.Pet) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Pet = &p
	return s.save()
}

func (s *JSONStore) AddHabit(h models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Habits[h.ID] = h
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	h, ok := s.store.Habits[id]
	if !ok || h.ArchivedAt != nil {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}

	return h, nil
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, 0, len(s.store.Habits))
	for _, h := range s.store.Habits {
		if h.ArchivedAt == nil {
			habits = append(habits, h)
		}
	}

	return habits, nil
}

func (s *JSONStore) UpdateHabit(h models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Habits[h.ID]; !ok {
		return fmt.Errorf("habit not found: %s", h.ID)
	}

	s.store.Habits[h.ID] = h
	return s.save()
}

func (s *JSONStore) ArchiveHabit(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	h, ok := s.store.Habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}
	if h.ArchivedAt != nil {
		return fmt.Errorf("habit already archived: %s", id)
	}

	now := time.Now().UTC()
	h.ArchivedAt = &now
	s.store.Habits[id] = h
	return s.save()
}

func (s *JSONStore) GetAllItems() ([]models.InventoryItem, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	items := make([]models.InventoryItem, 0, len(s.store.Items))
	for _, it := range s.store.Items {
		items = append(items, it)
	}

	return items, nil
}

func (s *JSONStore) SaveItems(items []models.InventoryItem) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for _, it := range items {
		s.store.Items[it.ID] = it
	}
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
