package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/petlit/internal/models"
)

func wardrobe() []*models.InventoryItem {
	return []*models.InventoryItem{
		{ID: "hat1", Type: models.ItemOutfit, OutfitClass: models.OutfitHat, EquipStyle: models.EquipOverlay, Owned: true, Equipped: true},
		{ID: "hat2", Type: models.ItemOutfit, OutfitClass: models.OutfitHat, EquipStyle: models.EquipReplaceSprite, Owned: true},
		{ID: "shades", Type: models.ItemOutfit, OutfitClass: models.OutfitAccessory, Owned: true, Equipped: true},
		{ID: "den", Type: models.ItemRoom, Owned: true, Equipped: true},
		{ID: "loft", Type: models.ItemRoom, Owned: true},
		{ID: "crown", Type: models.ItemOutfit, OutfitClass: models.OutfitHat, Owned: false},
	}
}

func equippedIDs(items []*models.InventoryItem) []string {
	var ids []string
	for _, it := range EquippedItems(items) {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestApplyEquip_UnownedFailsWithoutMutation(t *testing.T) {
	items := wardrobe()
	before := equippedIDs(items)

	assert.False(t, ApplyEquip("crown", items))
	assert.False(t, ApplyEquip("no-such-item", items))
	assert.Equal(t, before, equippedIDs(items))
}

func TestApplyEquip_HatClassExclusivity(t *testing.T) {
	items := wardrobe()

	require.True(t, ApplyEquip("hat2", items))

	// Exactly one hat equipped, and it is the new one.
	var hats []string
	for _, it := range items {
		if it.OutfitClass == models.OutfitHat && it.Equipped {
			hats = append(hats, it.ID)
		}
	}
	assert.Equal(t, []string{"hat2"}, hats)

	// Other classes and rooms are untouched.
	assert.Contains(t, equippedIDs(items), "shades")
	assert.Contains(t, equippedIDs(items), "den")
}

func TestApplyEquip_EquipStyleDoesNotAffectExclusivity(t *testing.T) {
	// hat1 is an overlay, hat2 replaces the sprite; they still exclude
	// each other because they share a class.
	items := wardrobe()
	require.True(t, ApplyEquip("hat2", items))
	require.True(t, ApplyEquip("hat1", items))

	count := 0
	for _, it := range items {
		if it.OutfitClass == models.OutfitHat && it.Equipped {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestApplyEquip_RoomGlobalExclusivity(t *testing.T) {
	items := wardrobe()

	require.True(t, ApplyEquip("loft", items))

	var rooms []string
	for _, it := range items {
		if it.Type == models.ItemRoom && it.Equipped {
			rooms = append(rooms, it.ID)
		}
	}
	assert.Equal(t, []string{"loft"}, rooms)

	// Outfits unaffected by a room swap.
	assert.Contains(t, equippedIDs(items), "hat1")
	assert.Contains(t, equippedIDs(items), "shades")
}

func TestApplyEquip_ReEquipCurrentIsStable(t *testing.T) {
	items := wardrobe()
	require.True(t, ApplyEquip("den", items))
	assert.Contains(t, equippedIDs(items), "den")
}

func TestFitsSpecies(t *testing.T) {
	universal := models.InventoryItem{ID: "u"}
	catOnly := models.InventoryItem{ID: "c", Species: []models.Species{models.SpeciesCat}}

	assert.True(t, universal.FitsSpecies(models.SpeciesDog))
	assert.True(t, catOnly.FitsSpecies(models.SpeciesCat))
	assert.False(t, catOnly.FitsSpecies(models.SpeciesDog))
}
