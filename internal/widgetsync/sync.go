package widgetsync

import (
	"fmt"

	"github.com/julianstephens/petlit/internal/clock"
	"github.com/julianstephens/petlit/internal/logger"
	"github.com/julianstephens/petlit/internal/models"
	"github.com/julianstephens/petlit/internal/snapshot"
)

// Notifier tells downstream read-only consumers that a fresh snapshot is
// available. The two channels map to the aggregate-status consumer and the
// list-preview consumer; both are opaque fire-and-forget signals.
type Notifier interface {
	ReloadStatus()
	ReloadList()
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) ReloadStatus() {}
func (NopNotifier) ReloadList()   {}

// Service regenerates and publishes the widget snapshot after every
// state-changing action (habit completed, added, edited, archived).
type Service struct {
	Store  snapshot.Store
	Notify Notifier
	Clock  clock.Clock
}

func New(store snapshot.Store, notify Notifier, c clock.Clock) Service {
	if notify == nil {
		notify = NopNotifier{}
	}
	return Service{Store: store, Notify: notify, Clock: c}
}

// SyncNow serializes the current state into a snapshot, replaces the stored
// one, and signals both consumers. A nil app state means the install is not
// initialized yet; the sync is skipped without error.
func (s Service) SyncNow(habits []*models.Habit, st *models.AppState) error {
	if st == nil {
		logger.Debug("sync skipped, app state not initialized")
		return nil
	}

	snap := snapshot.Build(habits, st, s.Clock.Now())
	if err := s.Store.Save(snap); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}

	s.Notify.ReloadStatus()
	s.Notify.ReloadList()

	logger.Debug("snapshot published", "habits", len(snap.Habits))
	return nil
}
