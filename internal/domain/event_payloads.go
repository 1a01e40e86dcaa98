package domain

// QuestEventPayload is the payload for quest lifecycle events
type QuestEventPayload struct {
	QuestID   string `json:"quest_id"`
	QuestName string `json:"quest_name"`
	Reward    int    `json:"reward"`
	Timestamp int64  `json:"timestamp"`
}

// DailyCompletedPayload is the payload for daily.completed events
type DailyCompletedPayload struct {
	QuestName      string `json:"quest_name"`
	Reward         int    `json:"reward"`
	CompletedToday int    `json:"completed_today"`
	Timestamp      int64  `json:"timestamp"`
}

// DailyRolledPayload is the payload for daily.rolled events
type DailyRolledPayload struct {
	Date   string   `json:"date"`
	Quests []string `json:"quests"`
}

// ItemPurchasedPayload is the payload for item.purchased events
type ItemPurchasedPayload struct {
	ItemID    string `json:"item_id"`
	Cost      int    `json:"cost"`
	Balance   int    `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}

// MilestonePayload is the payload for milestone.reached events
type MilestonePayload struct {
	Threshold int    `json:"threshold"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}
