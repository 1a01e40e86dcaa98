package shop

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/reward"
)

//go:embed tiers.yaml
var defaultTiers []byte

type tierFile struct {
	Tiers []domain.ShopTier `yaml:"tiers"`
}

// PurchaseResult describes a committed purchase
type PurchaseResult struct {
	Item          domain.ShopItem     `json:"item"`
	Entry         domain.HistoryEntry `json:"entry"`
	Balance       int                 `json:"balance"`
	GameCompleted bool                `json:"gameCompleted"`
}

// Catalog is the static tiered item table
type Catalog struct {
	tiers []domain.ShopTier
}

// NewCatalog parses the built-in tier table
func NewCatalog() (*Catalog, error) {
	return ParseCatalog(defaultTiers)
}

// ParseCatalog builds a catalog from a YAML tier document
func ParseCatalog(data []byte) (*Catalog, error) {
	var f tierFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTiersFmt, err)
	}
	if err := validateTiers(f.Tiers); err != nil {
		return nil, err
	}
	return &Catalog{tiers: f.Tiers}, nil
}

func validateTiers(tiers []domain.ShopTier) error {
	if len(tiers) == 0 {
		return errors.New(ErrMsgEmptyTiers)
	}

	seen := make(map[string]struct{})
	prev := 0
	for _, tier := range tiers {
		if tier.Threshold < prev {
			return fmt.Errorf(ErrMsgTierOrderFmt, tier.Name, tier.Threshold)
		}
		prev = tier.Threshold

		for _, item := range tier.Items {
			if _, dup := seen[item.ID]; dup {
				return fmt.Errorf(ErrMsgDuplicateItemFmt, item.ID)
			}
			if item.Label == "" || item.Cost <= 0 {
				return fmt.Errorf(ErrMsgItemFieldsFmt, item.ID, tier.Name)
			}
			seen[item.ID] = struct{}{}
		}
	}
	return nil
}

// Tiers returns every tier, locked or not
func (c *Catalog) Tiers() []domain.ShopTier {
	out := make([]domain.ShopTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// AvailableItems returns the items unlocked at completedCount, lower tiers first
func (c *Catalog) AvailableItems(completedCount int) []domain.ShopItem {
	var items []domain.ShopItem
	for _, tier := range c.tiers {
		if completedCount < tier.Threshold {
			break
		}
		items = append(items, tier.Items...)
	}
	return items
}

// Find looks up an item and the threshold that unlocks it
func (c *Catalog) Find(itemID string) (domain.ShopItem, int, bool) {
	for _, tier := range c.tiers {
		for _, item := range tier.Items {
			if item.ID == itemID {
				return item, tier.Threshold, true
			}
		}
	}
	return domain.ShopItem{}, 0, false
}

// NextThreshold returns the next locked tier threshold, or false when everything is unlocked
func (c *Catalog) NextThreshold(completedCount int) (int, bool) {
	for _, tier := range c.tiers {
		if completedCount < tier.Threshold {
			return tier.Threshold, true
		}
	}
	return 0, false
}

// Thresholds lists the non-zero unlock thresholds in order
func (c *Catalog) Thresholds() []int {
	var out []int
	for _, tier := range c.tiers {
		if tier.Threshold > 0 {
			out = append(out, tier.Threshold)
		}
	}
	return out
}

// Purchase spends the catalog cost of itemID from acct.
// The cost always comes from the table, never from the caller.
func (c *Catalog) Purchase(acct *reward.Account, itemID string, completedCount int, now time.Time) (*PurchaseResult, error) {
	item, threshold, ok := c.Find(itemID)
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownItemFmt, domain.ErrItemNotFound, itemID)
	}
	if completedCount < threshold {
		return nil, fmt.Errorf(ErrMsgLockedItemFmt, domain.ErrItemLocked, itemID, threshold, completedCount)
	}

	entry := domain.HistoryEntry{
		Category: domain.HistoryPurchase,
		Text:     fmt.Sprintf(HistoryTextPurchaseFmt, item.Label, item.Cost),
		Amount:   -item.Cost,
		At:       now,
	}
	if err := acct.Spend(item.Cost, entry); err != nil {
		return nil, err
	}

	return &PurchaseResult{
		Item:          item,
		Entry:         entry,
		Balance:       acct.Balance(),
		GameCompleted: domain.IsGameCompletionItem(item.ID),
	}, nil
}
