package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/petlit/internal/models"
)

func sampleSnapshot() *Snapshot {
	gen := time.Date(2026, 1, 7, 9, 15, 30, 123456789, time.UTC)
	return &Snapshot{
		GeneratedAt:     gen,
		LastDailyReset:  time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC),
		LastWeeklyReset: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Habits: []Habit{
			{
				ID:                  "h1",
				Title:               "Stretch",
				CreatedAt:           gen.AddDate(0, 0, -3),
				Schedule:            models.XPerDay(2),
				CompletedCountToday: 1,
				CompletedThisWeek:   4,
			},
			{ID: "h2", Schedule: models.Daily(), CreatedAt: gen.AddDate(0, 0, -1)},
		},
	}
}

func TestEncodeDecode_RoundTripsExactly(t *testing.T) {
	orig := sampleSnapshot()

	data, err := Encode(orig)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestDecode_MalformedPayload(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestBuild_SkipsArchivedAndOrders(t *testing.T) {
	now := time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)
	archived := now.AddDate(0, 0, -1)
	st := &models.AppState{LastDailyReset: now, LastWeeklyReset: now}

	habits := []*models.Habit{
		{ID: "b", CreatedAt: now.Add(-time.Hour), Schedule: models.Daily()},
		{ID: "a", CreatedAt: now.Add(-time.Hour), Schedule: models.Daily()},
		{ID: "old", CreatedAt: now.Add(-2 * time.Hour), Schedule: models.Daily()},
		{ID: "gone", CreatedAt: now, Schedule: models.Daily(), ArchivedAt: &archived},
		nil,
	}

	snap := Build(habits, st, now)
	require.NotNil(t, snap)
	require.Len(t, snap.Habits, 3)
	assert.Equal(t, "old", snap.Habits[0].ID)
	assert.Equal(t, "a", snap.Habits[1].ID)
	assert.Equal(t, "b", snap.Habits[2].ID)
	assert.Equal(t, now, snap.GeneratedAt)
}

func TestBuild_NilAppState(t *testing.T) {
	assert.Nil(t, Build(nil, nil, time.Now()))
}

func TestJSONStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.json")
	store := NewJSONStore(path)

	orig := sampleSnapshot()
	require.NoError(t, store.Save(orig))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestJSONStore_MissingFileIsNoSnapshot(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "widget.json"))
	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestJSONStore_CorruptPayloadFailsClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage{{{"), 0600))

	store := NewJSONStore(path)
	got, err := store.Load()
	require.NoError(t, err, "corrupt data must degrade, not error")
	assert.Nil(t, got)
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	orig := sampleSnapshot()
	require.NoError(t, store.Save(orig))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, orig, got)

	// Latest snapshot wins.
	next := sampleSnapshot()
	next.Habits = next.Habits[:1]
	require.NoError(t, store.Save(next))

	got, err = store.Load()
	require.NoError(t, err)
	require.Len(t, got.Habits, 1)
}

func TestSQLiteStore_EmptyIsNoSnapshot(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "widget.db"))
	defer store.Close()

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}
