package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/julianstephens/petlit/internal/clock"
	"github.com/julianstephens/petlit/internal/models"
)

type InitCmd struct {
	Name    string `short:"n" help:"Player name." default:""`
	Species string `short:"s" help:"Pet species (cat|dog|bunny|axolotl)." default:"cat"`
}

func (c *InitCmd) Validate() error {
	switch models.Species(c.Species) {
	case models.SpeciesCat, models.SpeciesDog, models.SpeciesBunny, models.SpeciesAxolotl:
		return nil
	default:
		return fmt.Errorf("invalid species: %s", c.Species)
	}
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	now := ctx.Engine.Clock.Now()
	species := models.Species(c.Species)

	pet := models.Pet{
		Species:     species,
		Energy:      80,
		Hunger:      80,
		Cleanliness: 80,
		Level:       1,
		CreatedAt:   now,
	}
	if err := ctx.Store.SavePet(pet); err != nil {
		return err
	}

	st := models.AppState{
		LastDailyReset:     clock.StartOfDay(now),
		LastWeeklyReset:    clock.StartOfWeek(now),
		UserName:           c.Name,
		SelectedPetSpecies: species,
	}
	if err := ctx.Store.SaveAppState(st); err != nil {
		return err
	}

	if err := ctx.Store.SaveItems(starterItems()); err != nil {
		return err
	}

	fmt.Printf("Initialized petlit storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

// starterItems is the owned-by-default cosmetic set every install begins
// with.
func starterItems() []models.InventoryItem {
	return []models.InventoryItem{
		{
			ID:       uuid.New().String(),
			Name:     "Cozy Den",
			Type:     models.ItemRoom,
			Owned:    true,
			Equipped: true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Plain Coat",
			Type:        models.ItemOutfit,
			OutfitClass: models.OutfitBody,
			EquipStyle:  models.EquipReplaceSprite,
			Owned:       true,
			Equipped:    true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Party Hat",
			Type:        models.ItemOutfit,
			OutfitClass: models.OutfitHat,
			EquipStyle:  models.EquipOverlay,
			Owned:       false,
		},
	}
}
