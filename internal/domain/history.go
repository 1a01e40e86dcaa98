package domain

import "time"

// HistoryCategory tags a history entry with the action that produced it
type HistoryCategory string

const (
	HistoryDaily    HistoryCategory = "daily"    // daily quest checked
	HistoryTimed    HistoryCategory = "timed"    // custom quest validated
	HistoryCancel   HistoryCategory = "cancel"   // custom quest cancelled
	HistoryStart    HistoryCategory = "start"    // custom quest timer started
	HistoryPurchase HistoryCategory = "purchase" // shop item bought
)

// HistoryEntry is an immutable line of the reward ledger
type HistoryEntry struct {
	Category HistoryCategory `json:"category"`
	Text     string          `json:"text"`
	Amount   int             `json:"amount"` // signed point delta, 0 for non-monetary entries
	At       time.Time       `json:"at"`
}

// IsCompletion reports whether the entry counts as a completed quest
func (e HistoryEntry) IsCompletion() bool {
	return e.Category == HistoryDaily || e.Category == HistoryTimed
}
