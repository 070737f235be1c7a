package cli

import (
	"fmt"

	"github.com/julianstephens/petlit/internal/projection"
	"github.com/julianstephens/petlit/internal/snapshot"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	w, err := ctx.loadWorld()
	if err != nil {
		return err
	}
	if w.Pet == nil || w.AppState == nil {
		return fmt.Errorf("no pet yet, run 'petlit init' first")
	}

	now := ctx.Engine.Clock.Now()
	snap := snapshot.Build(w.Habits, w.AppState, now)
	agg := projection.Summarize(snap, now)

	fmt.Printf("%s (level %d)\n", w.AppState.SelectedPetSpecies, w.Pet.Level)
	fmt.Printf("  energy %d  hunger %d  cleanliness %d\n", w.Pet.Energy, w.Pet.Hunger, w.Pet.Cleanliness)
	fmt.Printf("  coins %d  xp %d\n", w.Pet.Coins, w.Pet.XP)
	fmt.Printf("  streak %d (best %d)\n", w.AppState.CurrentStreak, w.AppState.LongestStreak)
	fmt.Printf("  today: %d/%d done, %d remaining\n", agg.Done, agg.Total, agg.Remaining)
	return nil
}
