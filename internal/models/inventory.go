package models

type ItemType string

const (
	ItemOutfit ItemType = "outfit"
	ItemRoom   ItemType = "room"
)

// OutfitClass is the exclusivity group for outfit items: at most one item
// per class may be equipped at a time.
type OutfitClass string

const (
	OutfitBody      OutfitClass = "body"
	OutfitHat       OutfitClass = "hat"
	OutfitAccessory OutfitClass = "accessory"
	OutfitGlasses   OutfitClass = "glasses"
)

// EquipStyle describes how an equipped item renders. It has no bearing on
// exclusivity.
type EquipStyle string

const (
	EquipReplaceSprite EquipStyle = "replace_sprite"
	EquipOverlay       EquipStyle = "overlay"
)

// InventoryItem is a cosmetic the player can own and equip. Species nil
// means the item fits every species.
type InventoryItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        ItemType    `json:"type"`
	OutfitClass OutfitClass `json:"outfit_class,omitempty"`
	EquipStyle  EquipStyle  `json:"equip_style,omitempty"`
	Species     []Species   `json:"species,omitempty"`
	Owned       bool        `json:"owned"`
	Equipped    bool        `json:"equipped"`
}

// FitsSpecies reports whether the item can be worn by the given species.
func (it InventoryItem) FitsSpecies(sp Species) bool {
	if len(it.Species) == 0 {
		return true
	}
	for _, s := range it.Species {
		if s == sp {
			return true
		}
	}
	return false
}
