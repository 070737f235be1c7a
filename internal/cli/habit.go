package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/julianstephens/petlit/internal/game"
	"github.com/julianstephens/petlit/internal/models"
	"github.com/julianstephens/petlit/internal/projection"
	"github.com/julianstephens/petlit/internal/snapshot"
)

type HabitAddCmd struct {
	Title    string `arg:"" help:"Habit title."`
	Schedule string `short:"s" help:"Schedule kind (daily|weekly|x_per_day|x_per_week)." default:"daily"`
	Target   int    `short:"t" help:"Completions per period for the x_per_* kinds." default:"0"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	w, err := ctx.loadWorld()
	if err != nil {
		return err
	}

	sched, err := parseSchedule(c.Schedule, c.Target)
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Schedule:  sched,
		CreatedAt: ctx.Engine.Clock.Now(),
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	w.Habits = append(w.Habits, &habit)
	if err := ctx.publish(w); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", c.Title, habit.ID)
	return nil
}

type HabitDoneCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	w, err := ctx.loadWorld()
	if err != nil {
		return err
	}

	var habit *models.Habit
	for _, h := range w.Habits {
		if h.ID == c.ID {
			habit = h
			break
		}
	}
	if habit == nil {
		return fmt.Errorf("habit not found: %s", c.ID)
	}
	if w.Pet == nil {
		return fmt.Errorf("no pet yet, run 'petlit init' first")
	}

	rewarded := ctx.Engine.CompleteHabit(habit, w.Pet, w.AppState)
	if err := ctx.saveWorld(w); err != nil {
		return err
	}
	if err := ctx.publish(w); err != nil {
		return err
	}

	if rewarded {
		fmt.Printf("Nice! +%d coins, +%d xp (level %d)\n", game.RewardCoins, game.RewardXP, w.Pet.Level)
	} else {
		fmt.Printf("Progress recorded: %d/%d this period\n",
			periodCount(habit), habit.Schedule.GoalTarget())
	}
	return nil
}

type HabitListCmd struct {
	Limit int `short:"l" help:"Maximum habits to show." default:"10"`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	w, err := ctx.loadWorld()
	if err != nil {
		return err
	}

	now := ctx.Engine.Clock.Now()
	snap := snapshot.Build(w.Habits, w.AppState, now)
	for _, p := range projection.ListPreview(snap, now, c.Limit) {
		mark := " "
		if p.Done {
			mark = "x"
		}
		fmt.Printf("[%s] %s (%d/%d)  %s\n", mark, p.Title, p.Count, p.Target, p.ID)
	}
	return nil
}

type HabitArchiveCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	w, err := ctx.loadWorld()
	if err != nil {
		return err
	}

	if err := ctx.Store.ArchiveHabit(c.ID); err != nil {
		return err
	}

	// Drop the archived habit from the publish set.
	kept := w.Habits[:0]
	for _, h := range w.Habits {
		if h.ID != c.ID {
			kept = append(kept, h)
		}
	}
	w.Habits = kept

	if err := ctx.publish(w); err != nil {
		return err
	}

	fmt.Printf("Archived habit: %s\n", c.ID)
	return nil
}

func periodCount(h *models.Habit) int {
	if h.Schedule.DailyScoped() {
		return h.CompletedCountToday
	}
	return h.CompletedThisWeek
}
