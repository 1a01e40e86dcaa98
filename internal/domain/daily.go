package domain

// DailyQuest is one entry of the daily quest pool
type DailyQuest struct {
	Name   string `json:"name"`
	Reward int    `json:"reward"`
	Icon   string `json:"icon"`
}

// DailySelection represents the three quests drawn for a calendar day
type DailySelection struct {
	Date           string       `json:"date"` // YYYY-MM-DD in the configured timezone
	Quests         []DailyQuest `json:"quests"`
	CompletedToday int          `json:"completedToday"`
	Completed      []string     `json:"completed,omitempty"` // names checked today
}

// Find returns the selected quest with the given name
func (s DailySelection) Find(name string) (DailyQuest, bool) {
	for _, q := range s.Quests {
		if q.Name == name {
			return q, true
		}
	}
	return DailyQuest{}, false
}

// IsCompleted reports whether the named quest was already checked today
func (s DailySelection) IsCompleted(name string) bool {
	for _, n := range s.Completed {
		if n == name {
			return true
		}
	}
	return false
}

// DailyQuestPoolConfig represents the daily quest pool configuration
type DailyQuestPoolConfig struct {
	Version   string       `json:"version"`
	QuestPool []DailyQuest `json:"quest_pool"`
}

// Daily quest constants
const (
	DailyQuestsPerDay = 3
	DailyDateLayout   = "2006-01-02"
)
