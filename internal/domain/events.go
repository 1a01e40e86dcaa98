package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "quest.completed")
const (
	// EventTypeQuestAdded is published when a custom quest is appended to the ledger
	EventTypeQuestAdded = "quest.added"

	// EventTypeQuestStarted is published when a quest timer starts
	EventTypeQuestStarted = "quest.started"

	// EventTypeQuestCancelled is published when a quest is removed without reward
	EventTypeQuestCancelled = "quest.cancelled"

	// EventTypeQuestCompleted is published when a timed quest is validated
	EventTypeQuestCompleted = "quest.completed"

	// EventTypeDailyCompleted is published when a daily quest is checked
	EventTypeDailyCompleted = "daily.completed"

	// EventTypeDailyRolled is published when a new day's selection is drawn
	EventTypeDailyRolled = "daily.rolled"

	// EventTypeItemPurchased is published after a shop purchase is committed.
	// The relay subscriber turns it into an in-game give command.
	EventTypeItemPurchased = "item.purchased"

	// EventTypeGameCompleted is published when an End item is bought
	EventTypeGameCompleted = "game.completed"

	// EventTypeMilestoneReached is published when the completed count lands on a tier threshold
	EventTypeMilestoneReached = "milestone.reached"

	// EventTypeHistoryCleared is published when the history log is wiped
	EventTypeHistoryCleared = "history.cleared"

	// EventTypeStateReset is published after a full reset
	EventTypeStateReset = "state.reset"
)
