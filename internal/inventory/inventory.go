package inventory

import (
	"github.com/julianstephens/petlit/internal/logger"
	"github.com/julianstephens/petlit/internal/models"
)

// ApplyEquip equips the item with the given id, enforcing the exclusivity
// invariant: at most one room is equipped globally, and at most one outfit
// per outfit class (equip style plays no part in exclusivity). Equipping an
// item the player does not own fails with no mutation.
//
// After any successful call the invariant holds across the whole slice.
func ApplyEquip(itemID string, items []*models.InventoryItem) bool {
	var target *models.InventoryItem
	for _, it := range items {
		if it != nil && it.ID == itemID {
			target = it
			break
		}
	}
	if target == nil || !target.Owned {
		logger.Debug("equip rejected", "item", itemID)
		return false
	}

	for _, it := range items {
		if it == nil || it == target || !it.Equipped {
			continue
		}
		if excludes(target, it) {
			it.Equipped = false
		}
	}

	target.Equipped = true
	return true
}

// EquippedItems returns the currently equipped subset, useful for renderers.
func EquippedItems(items []*models.InventoryItem) []*models.InventoryItem {
	var out []*models.InventoryItem
	for _, it := range items {
		if it != nil && it.Equipped {
			out = append(out, it)
		}
	}
	return out
}

// excludes reports whether equipping target forces other off.
func excludes(target, other *models.InventoryItem) bool {
	if target.Type != other.Type {
		return false
	}
	if target.Type == models.ItemRoom {
		return true
	}
	return target.OutfitClass == other.OutfitClass
}
