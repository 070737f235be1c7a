package cli

import (
	"fmt"

	"github.com/julianstephens/petlit/internal/inventory"
	"github.com/julianstephens/petlit/internal/models"
)

type EquipCmd struct {
	ID string `arg:"" help:"Inventory item ID."`
}

func (c *EquipCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	items, err := ctx.Store.GetAllItems()
	if err != nil {
		return err
	}

	refs := make([]*models.InventoryItem, len(items))
	for i := range items {
		refs[i] = &items[i]
	}

	if !inventory.ApplyEquip(c.ID, refs) {
		return fmt.Errorf("cannot equip item %s: not owned or not found", c.ID)
	}

	if err := ctx.Store.SaveItems(items); err != nil {
		return err
	}

	fmt.Printf("Equipped item: %s\n", c.ID)
	return nil
}

type ItemListCmd struct{}

func (c *ItemListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	items, err := ctx.Store.GetAllItems()
	if err != nil {
		return err
	}

	for _, it := range items {
		state := "locked"
		if it.Owned {
			state = "owned"
		}
		if it.Equipped {
			state = "equipped"
		}
		fmt.Printf("%-9s %-20s %s  %s\n", state, it.Name, it.Type, it.ID)
	}
	return nil
}
