package cli

import (
	"fmt"

	"github.com/julianstephens/petlit/internal/game"
	"github.com/julianstephens/petlit/internal/models"
	"github.com/julianstephens/petlit/internal/storage"
	"github.com/julianstephens/petlit/internal/widgetsync"
)

type Context struct {
	Store  storage.Provider
	Engine game.Engine
	Sync   widgetsync.Service
}

// world is the loaded mutable state a command operates on. Habits are held
// as pointers so the engines mutate the same records the command persists.
type world struct {
	AppState *models.AppState
	Pet      *models.Pet
	Habits   []*models.Habit
}

// loadWorld loads the live state and runs the opportunistic reset pass, the
// same pass the app runs on resume. The boundary mutations are persisted
// before the command's own work begins.
func (ctx *Context) loadWorld() (*world, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}

	st, err := ctx.Store.GetAppState()
	if err != nil {
		return nil, err
	}
	pet, err := ctx.Store.GetPet()
	if err != nil {
		return nil, err
	}
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return nil, err
	}

	w := &world{AppState: st, Pet: pet}
	for i := range habits {
		h := habits[i]
		w.Habits = append(w.Habits, &h)
	}

	res := ctx.Engine.RunResets(w.AppState, w.Habits, w.Pet)
	if res.DailyApplied || res.WeeklyApplied {
		if err := ctx.saveWorld(w); err != nil {
			return nil, fmt.Errorf("failed to persist reset pass: %w", err)
		}
	}

	return w, nil
}

func (ctx *Context) saveWorld(w *world) error {
	if w.AppState != nil {
		if err := ctx.Store.SaveAppState(*w.AppState); err != nil {
			return err
		}
	}
	if w.Pet != nil {
		if err := ctx.Store.SavePet(*w.Pet); err != nil {
			return err
		}
	}
	for _, h := range w.Habits {
		if err := ctx.Store.UpdateHabit(*h); err != nil {
			return err
		}
	}
	return nil
}

// publish pushes a fresh snapshot to the widget store and signals the
// read-only consumers.
func (ctx *Context) publish(w *world) error {
	return ctx.Sync.SyncNow(w.Habits, w.AppState)
}

func parseSchedule(kind string, target int) (models.Schedule, error) {
	switch kind {
	case "daily":
		return models.Daily(), nil
	case "weekly":
		return models.Weekly(), nil
	case "x_per_day":
		if target < 1 {
			return models.Schedule{}, fmt.Errorf("x_per_day requires --target >= 1")
		}
		return models.XPerDay(target), nil
	case "x_per_week":
		if target < 1 {
			return models.Schedule{}, fmt.Errorf("x_per_week requires --target >= 1")
		}
		return models.XPerWeek(target), nil
	default:
		return models.Schedule{}, fmt.Errorf("invalid schedule kind: %s", kind)
	}
}
