package milestone

import "fmt"

// Kind distinguishes the notices raised at a threshold
type Kind string

const (
	KindTierUnlocked Kind = "tier_unlocked"
	KindEndGame      Kind = "end_game"
)

// Notice is a one-shot message raised when the completed count lands on a threshold
type Notice struct {
	Threshold int    `json:"threshold"`
	Kind      Kind   `json:"kind"`
	Message   string `json:"message"`
}

const (
	msgTierUnlockedFmt = "🎉 %d quests completed! New shop items unlocked."
	msgEndGame         = "🐉 The End is open: Eye of Ender and Elytra are now for sale."
)

// DefaultThresholds are the shop tier boundaries
var DefaultThresholds = []int{20, 40, 60, 140}

// EndGameThreshold also raises the end-game notice
const EndGameThreshold = 140

// Notifier raises notices when the count equals a threshold exactly.
// Callers check after every single completion so no threshold is skipped.
type Notifier struct {
	thresholds map[int]struct{}
}

// NewNotifier creates a notifier for the given thresholds
func NewNotifier(thresholds []int) *Notifier {
	set := make(map[int]struct{}, len(thresholds))
	for _, t := range thresholds {
		set[t] = struct{}{}
	}
	return &Notifier{thresholds: set}
}

// Check returns the notices for completedCount, or nil
func (n *Notifier) Check(completedCount int) []Notice {
	if _, ok := n.thresholds[completedCount]; !ok {
		return nil
	}

	notices := []Notice{{
		Threshold: completedCount,
		Kind:      KindTierUnlocked,
		Message:   fmt.Sprintf(msgTierUnlockedFmt, completedCount),
	}}
	if completedCount == EndGameThreshold {
		notices = append(notices, Notice{
			Threshold: completedCount,
			Kind:      KindEndGame,
			Message:   msgEndGame,
		})
	}
	return notices
}
