package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidIndex          = "Quest index must be a non-negative integer"
	ErrMsgGatherStats           = "Failed to gather metrics"
)

// Success messages
const (
	MsgHistoryCleared = "History cleared"
	MsgStateReset     = "Progress reset"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgDecodeFailedFmt = "Failed to decode %s request"
	LogMsgDecodedFmt      = "%s request decoded"

	LogMsgGatherStatsFailed = "Failed to gather metrics"
)

// Action names used in logs
const (
	ActionGetState      = "Get state"
	ActionGetSummary    = "Get summary"
	ActionListQuests    = "List quests"
	ActionAddQuest      = "Add quest"
	ActionStartQuest    = "Start quest"
	ActionCancelQuest   = "Cancel quest"
	ActionCompleteQuest = "Complete quest"
	ActionQuestProgress = "Quest progress"
	ActionGetDaily      = "Get daily quests"
	ActionCompleteDaily = "Complete daily quest"
	ActionGetShop       = "Get shop"
	ActionBuyItem       = "Buy item"
	ActionGetHistory    = "Get history"
	ActionClearHistory  = "Clear history"
	ActionReset         = "Reset"
)
