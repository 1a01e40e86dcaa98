package domain

import "time"

// Quest represents a user-defined timed quest
type Quest struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Difficulty      int        `json:"difficulty"`
	Reward          int        `json:"reward"`
	DurationMinutes int        `json:"durationMinutes"`
	StartTime       *time.Time `json:"startTime"`
}

// IsStarted reports whether the quest timer has been started
func (q Quest) IsStarted() bool {
	return q.StartTime != nil
}

// Duration returns the declared duration
func (q Quest) Duration() time.Duration {
	return time.Duration(q.DurationMinutes) * time.Minute
}

// QuestProgress is a read-only projection of a running quest timer
type QuestProgress struct {
	Index         int           `json:"index"`
	Quest         Quest         `json:"quest"`
	Started       bool          `json:"started"`
	Percent       float64       `json:"percent"`
	Elapsed       time.Duration `json:"elapsed"`
	Remaining     time.Duration `json:"remaining"`
	RemainingText string        `json:"remainingText"`
	Eligible      bool          `json:"eligible"`
	Finished      bool          `json:"finished"`
}

// Quest constraints
const (
	MinDifficulty        = 1
	MaxDifficulty        = 5
	RewardPerDifficulty  = 10
	MaxDurationMinutes   = 240
	MaxQuestNameLength   = 100
	CompletionPercentMin = 90 // percent of the declared duration that must elapse
)
