package game

// Error messages
const (
	ErrMsgSaveStateFmt = "failed to save state: %w"
	ErrMsgSaveDailyFmt = "failed to save daily selection: %w"
	ErrMsgLoadStateFmt = "failed to load state: %w"
	ErrMsgLoadDailyFmt = "failed to load daily selection: %w"
	ErrMsgMissingDep   = "game service requires a gateway, selector, catalog and notifier"
)

// Log messages
const (
	LogMsgQuestAdded         = "Quest added"
	LogMsgQuestStarted       = "Quest started"
	LogMsgQuestCancelled     = "Quest cancelled"
	LogMsgQuestCompleted     = "Quest completed"
	LogMsgDailyCompleted     = "Daily quest completed"
	LogMsgDailyRolled        = "New daily quests drawn"
	LogMsgItemPurchased      = "Item purchased"
	LogMsgGameCompleted      = "End item purchased, game completed"
	LogMsgMilestone          = "Milestone reached"
	LogMsgHistoryCleared     = "History cleared"
	LogMsgStateReset         = "State reset"
	LogMsgPublishFailed      = "Failed to publish event"
	LogMsgServiceReady       = "Game service ready"
	LogMsgDailyRestoreFailed = "Failed to restore previous daily selection"
)

// Completion kinds used in log attributes
const (
	logKindDaily = "daily"
	logKindTimed = "timed"
)
