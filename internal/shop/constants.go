package shop

// Formatted error messages
const (
	ErrMsgParseTiersFmt    = "failed to parse shop tiers: %w"
	ErrMsgEmptyTiers       = "shop tier table is empty"
	ErrMsgTierOrderFmt     = "shop tier %q threshold %d is below the previous tier"
	ErrMsgDuplicateItemFmt = "shop item %q appears in more than one tier"
	ErrMsgItemFieldsFmt    = "shop item %q in tier %q needs a label and a positive cost"
	ErrMsgUnknownItemFmt   = "%w: %q"
	ErrMsgLockedItemFmt    = "%w: %q unlocks at %d completed quests (have %d)"
)

// History texts
const (
	HistoryTextPurchaseFmt = "🛒 Bought %s (-%d pts)"
)
