package quest

// Formatted error messages
const (
	ErrMsgQuestIndexFmt      = "%w: index %d (have %d quests)"
	ErrMsgEmptyNameFmt       = "%w: quest name is required"
	ErrMsgNameTooLongFmt     = "%w: quest name exceeds %d characters"
	ErrMsgDifficultyRangeFmt = "%w: difficulty %d outside %d..%d"
	ErrMsgDurationMissingFmt = "%w: duration must be a positive number of minutes, got %d"
	ErrMsgDurationTooLongFmt = "%w: %d minutes exceeds the %d minute maximum"
	ErrMsgAlreadyActiveFmt   = "%w: %q is running"
	ErrMsgNotStartedFmt      = "%w: start %q before validating it"
	ErrMsgTooEarlyFmt        = "%w: %s elapsed, %s required"
)

// History texts
const (
	HistoryTextStartedFmt   = "⏱️ Quest started: %s (%d min)"
	HistoryTextCancelledFmt = "❌ Quest cancelled: %s"
	HistoryTextCompletedFmt = "✅ Quest completed: %s (+%d pts)"
)

// Display texts
const (
	TextNotStarted = "not started"
	TextTimeUp     = "time is up"
)
