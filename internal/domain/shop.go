package domain

// ShopItem is a purchasable cosmetic block
type ShopItem struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Cost  int    `json:"cost" yaml:"cost"`
}

// ShopTier is a bracket of items unlocked at a completed-quest threshold
type ShopTier struct {
	Name      string     `json:"name" yaml:"name"`
	Threshold int        `json:"threshold" yaml:"threshold"`
	Items     []ShopItem `json:"items" yaml:"items"`
}

// Game-completion item ids
const (
	ItemElytra     = "ELYTRA"
	ItemEyeOfEnder = "EYE_OF_ENDER"
)

// IsGameCompletionItem reports whether buying the item finishes the game
func IsGameCompletionItem(itemID string) bool {
	return itemID == ItemElytra || itemID == ItemEyeOfEnder
}
