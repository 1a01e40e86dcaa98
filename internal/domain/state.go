package domain

// AppState is the whole persisted state of the single player
type AppState struct {
	Points         int            `json:"points"`
	Quests         []Quest        `json:"quests"`
	History        []HistoryEntry `json:"history"`
	DailyCount     int            `json:"dailyCount"`
	DailyCompleted []string       `json:"dailyCompleted"`
	ActiveQuest    *int           `json:"activeQuest"`
}

// NewAppState returns the empty default state
func NewAppState() *AppState {
	return &AppState{
		Quests:         []Quest{},
		History:        []HistoryEntry{},
		DailyCompleted: []string{},
	}
}

// Clone returns a deep copy so mutations can be discarded on failure
func (s *AppState) Clone() *AppState {
	if s == nil {
		return NewAppState()
	}

	c := &AppState{
		Points:         s.Points,
		DailyCount:     s.DailyCount,
		Quests:         make([]Quest, len(s.Quests)),
		History:        make([]HistoryEntry, len(s.History)),
		DailyCompleted: make([]string, len(s.DailyCompleted)),
	}

	for i, q := range s.Quests {
		if q.StartTime != nil {
			t := *q.StartTime
			q.StartTime = &t
		}
		c.Quests[i] = q
	}
	copy(c.History, s.History)
	copy(c.DailyCompleted, s.DailyCompleted)

	if s.ActiveQuest != nil {
		idx := *s.ActiveQuest
		c.ActiveQuest = &idx
	}

	return c
}

// Normalize replaces nil collections left by older or hand-edited blobs
func (s *AppState) Normalize() {
	if s.Quests == nil {
		s.Quests = []Quest{}
	}
	if s.History == nil {
		s.History = []HistoryEntry{}
	}
	if s.DailyCompleted == nil {
		s.DailyCompleted = []string{}
	}
	if s.ActiveQuest != nil && (*s.ActiveQuest < 0 || *s.ActiveQuest >= len(s.Quests)) {
		s.ActiveQuest = nil
	}
}

// Summary is a compact view of the player state
type Summary struct {
	Points         int    `json:"points"`
	CompletedCount int    `json:"completedCount"`
	NextTierAt     *int   `json:"nextTierAt,omitempty"`
	DailyCount     int    `json:"dailyCount"`
	QuestCount     int    `json:"questCount"`
	ActiveQuest    *int   `json:"activeQuest"`
	ActiveName     string `json:"activeName,omitempty"`
}
