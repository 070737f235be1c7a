package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/petlit/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS singletons (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habits (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	schedule_kind   TEXT NOT NULL,
	schedule_target INTEGER NOT NULL DEFAULT 0,
	completed_today INTEGER NOT NULL DEFAULT 0,
	completed_week  INTEGER NOT NULL DEFAULT 0,
	last_completed  TEXT,
	created_at      TEXT NOT NULL,
	archived_at     TEXT
);
CREATE TABLE IF NOT EXISTS items (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	type         TEXT NOT NULL,
	outfit_class TEXT NOT NULL DEFAULT '',
	equip_style  TEXT NOT NULL DEFAULT '',
	species      TEXT NOT NULL DEFAULT '[]',
	owned        INTEGER NOT NULL DEFAULT 0,
	equipped     INTEGER NOT NULL DEFAULT 0
);`

const (
	keyAppState = "app_state"
	keyPet      = "pet"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'petlit init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) getSingleton(key string, out interface{}) (bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM singletons WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, fmt.Errorf("failed to parse %s record: %w", key, err)
	}
	return true, nil
}

func (s *SQLiteStore) saveSingleton(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s record: %w", key, err)
	}
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO singletons (key, value) VALUES (?, ?)",
		key, string(data),
	)
	return err
}

func (s *SQLiteStore) GetAppState() (*models.AppState, error) {
	var st models.AppState
	ok, err := s.getSingleton(keyAppState, &st)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (s *SQLiteStore) SaveAppState(st models.AppState) error {
	return s.saveSingleton(keyAppState, st)
}

func (s *SQLiteStore) GetPet() (*models.Pet, error) {
	var p models.Pet
	ok, err := s.getSingleton(keyPet, &p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *SQLiteStore) SavePet(p models.Pet) error {
	return s.saveSingleton(keyPet, p)
}

func (s *SQLiteStore) AddHabit(h models.Habit) error {
	return s.writeHabit(h)
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, title, schedule_kind, schedule_target, completed_today,
		       completed_week, last_completed, created_at, archived_at
		FROM habits WHERE id = ? AND archived_at IS NULL`, id)

	h, err := scanHabit(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("habit not found: %s", id)
		}
		return models.Habit{}, err
	}
	return h, nil
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, title, schedule_kind, schedule_target, completed_today,
		       completed_week, last_completed, created_at, archived_at
		FROM habits WHERE archived_at IS NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *SQLiteStore) UpdateHabit(h models.Habit) error {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM habits WHERE id = ?", h.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check habit existence: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("habit not found: %s", h.ID)
	}

	return s.writeHabit(h)
}

func (s *SQLiteStore) writeHabit(h models.Habit) error {
	var lastCompleted, archivedAt sql.NullString
	if h.LastCompletedDate != nil {
		lastCompleted = sql.NullString{String: h.LastCompletedDate.Format(time.RFC3339Nano), Valid: true}
	}
	if h.ArchivedAt != nil {
		archivedAt = sql.NullString{String: h.ArchivedAt.Format(time.RFC3339Nano), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO habits (
			id, title, schedule_kind, schedule_target, completed_today,
			completed_week, last_completed, created_at, archived_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Title, string(h.Schedule.Kind), h.Schedule.Target, h.CompletedCountToday,
		h.CompletedThisWeek, lastCompleted, h.CreatedAt.Format(time.RFC3339Nano), archivedAt,
	)
	return err
}

func (s *SQLiteStore) ArchiveHabit(id string) error {
	var archivedAt sql.NullString
	err := s.db.QueryRow("SELECT archived_at FROM habits WHERE id = ?", id).Scan(&archivedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("habit not found: %s", id)
		}
		return fmt.Errorf("failed to check habit existence: %w", err)
	}

	if archivedAt.Valid {
		return fmt.Errorf("habit already archived: %s", id)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.Exec("UPDATE habits SET archived_at = ? WHERE id = ?", now, id)
	return err
}

func (s *SQLiteStore) GetAllItems() ([]models.InventoryItem, error) {
	rows, err := s.db.Query(`
		SELECT id, name, type, outfit_class, equip_style, species, owned, equipped
		FROM items`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var it models.InventoryItem
		var speciesJSON string
		var owned, equipped bool

		if err := rows.Scan(
			&it.ID, &it.Name, &it.Type, &it.OutfitClass, &it.EquipStyle,
			&speciesJSON, &owned, &equipped,
		); err != nil {
			return nil, err
		}

		it.Owned = owned
		it.Equipped = equipped
		if speciesJSON != "" {
			if err := json.Unmarshal([]byte(speciesJSON), &it.Species); err != nil {
				return nil, fmt.Errorf("failed to parse species for item %s: %w", it.ID, err)
			}
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (s *SQLiteStore) SaveItems(items []models.InventoryItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO items (
			id, name, type, outfit_class, equip_style, species, owned, equipped
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range items {
		speciesJSON, err := json.Marshal(it.Species)
		if err != nil {
			return fmt.Errorf("failed to serialize species for item %s: %w", it.ID, err)
		}
		if _, err := stmt.Exec(
			it.ID, it.Name, string(it.Type), string(it.OutfitClass), string(it.EquipStyle),
			string(speciesJSON), it.Owned, it.Equipped,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func scanHabit(scan func(dest ...interface{}) error) (models.Habit, error) {
	var h models.Habit
	var kind, createdAt string
	var target, today, week int
	var lastCompleted, archivedAt sql.NullString

	if err := scan(
		&h.ID, &h.Title, &kind, &target, &today,
		&week, &lastCompleted, &createdAt, &archivedAt,
	); err != nil {
		return models.Habit{}, err
	}

	h.Schedule = models.Schedule{Kind: models.ScheduleKind(kind), Target: target}.Normalize()
	h.CompletedCountToday = today
	h.CompletedThisWeek = week

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	h.CreatedAt = created

	if lastCompleted.Valid {
		t, err := time.Parse(time.RFC3339Nano, lastCompleted.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse last_completed for habit %s: %w", h.ID, err)
		}
		h.LastCompletedDate = &t
	}
	if archivedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, archivedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse archived_at for habit %s: %w", h.ID, err)
		}
		h.ArchivedAt = &t
	}

	return h, nil
}
