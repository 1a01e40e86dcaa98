package quest

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

// CompletionResult is returned when a timed quest is validated
type CompletionResult struct {
	Quest  domain.Quest        `json:"quest"`
	Reward int                 `json:"reward"`
	Entry  domain.HistoryEntry `json:"entry"`
}

// Ledger applies the custom quest lifecycle to an AppState.
// It never touches the balance; reward deltas are returned to the caller.
type Ledger struct {
	now   func() time.Time
	newID func() string
}

// NewLedger creates a ledger using the given clock
func NewLedger(now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		now:   now,
		newID: uuid.NewString,
	}
}

// Add validates and appends a new quest; the timer is not started
func (l *Ledger) Add(st *domain.AppState, name string, difficulty, durationMinutes int) (domain.Quest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Quest{}, fmt.Errorf(ErrMsgEmptyNameFmt, domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxQuestNameLength {
		return domain.Quest{}, fmt.Errorf(ErrMsgNameTooLongFmt, domain.ErrInvalidInput, domain.MaxQuestNameLength)
	}
	if difficulty < domain.MinDifficulty || difficulty > domain.MaxDifficulty {
		return domain.Quest{}, fmt.Errorf(ErrMsgDifficultyRangeFmt, domain.ErrInvalidInput, difficulty, domain.MinDifficulty, domain.MaxDifficulty)
	}
	if durationMinutes <= 0 {
		return domain.Quest{}, fmt.Errorf(ErrMsgDurationMissingFmt, domain.ErrInvalidInput, durationMinutes)
	}
	if durationMinutes > domain.MaxDurationMinutes {
		return domain.Quest{}, fmt.Errorf(ErrMsgDurationTooLongFmt, domain.ErrDurationTooLong, durationMinutes, domain.MaxDurationMinutes)
	}

	q := domain.Quest{
		ID:              l.newID(),
		Name:            name,
		Difficulty:      difficulty,
		Reward:          difficulty * domain.RewardPerDifficulty,
		DurationMinutes: durationMinutes,
	}
	st.Quests = append(st.Quests, q)
	return q, nil
}

// Start begins the timer of the quest at index.
// Only one quest may run at a time, system-wide.
func (l *Ledger) Start(st *domain.AppState, index int) (domain.Quest, domain.HistoryEntry, error) {
	q, err := questAt(st, index)
	if err != nil {
		return domain.Quest{}, domain.HistoryEntry{}, err
	}
	if st.ActiveQuest != nil {
		return domain.Quest{}, domain.HistoryEntry{}, fmt.Errorf(ErrMsgAlreadyActiveFmt, domain.ErrQuestAlreadyActive, st.Quests[*st.ActiveQuest].Name)
	}

	now := l.now()
	q.StartTime = &now
	st.Quests[index] = q
	active := index
	st.ActiveQuest = &active

	entry := domain.HistoryEntry{
		Category: domain.HistoryStart,
		Text:     fmt.Sprintf(HistoryTextStartedFmt, q.Name, q.DurationMinutes),
		At:       now,
	}
	return q, entry, nil
}

// Cancel removes the quest at index, even mid-timer
func (l *Ledger) Cancel(st *domain.AppState, index int) (domain.Quest, domain.HistoryEntry, error) {
	q, err := questAt(st, index)
	if err != nil {
		return domain.Quest{}, domain.HistoryEntry{}, err
	}

	removeAt(st, index)

	entry := domain.HistoryEntry{
		Category: domain.HistoryCancel,
		Text:     fmt.Sprintf(HistoryTextCancelledFmt, q.Name),
		At:       l.now(),
	}
	return q, entry, nil
}

// Complete validates the quest at index once 90% of its duration has elapsed.
// Eligibility is based on wall-clock time only.
func (l *Ledger) Complete(st *domain.AppState, index int) (*CompletionResult, error) {
	q, err := questAt(st, index)
	if err != nil {
		return nil, err
	}
	if !q.IsStarted() {
		return nil, fmt.Errorf(ErrMsgNotStartedFmt, domain.ErrQuestNotStarted, q.Name)
	}

	now := l.now()
	elapsed := now.Sub(*q.StartTime)
	required := RequiredElapsed(q)
	if elapsed < required {
		return nil, fmt.Errorf(ErrMsgTooEarlyFmt, domain.ErrQuestTooEarly, elapsed.Truncate(time.Second), required)
	}

	removeAt(st, index)

	return &CompletionResult{
		Quest:  q,
		Reward: q.Reward,
		Entry: domain.HistoryEntry{
			Category: domain.HistoryTimed,
			Text:     fmt.Sprintf(HistoryTextCompletedFmt, q.Name, q.Reward),
			Amount:   q.Reward,
			At:       now,
		},
	}, nil
}

// RequiredElapsed is the minimum running time before a quest can be validated
func RequiredElapsed(q domain.Quest) time.Duration {
	return q.Duration() * domain.CompletionPercentMin / 100
}

func questAt(st *domain.AppState, index int) (domain.Quest, error) {
	if index < 0 || index >= len(st.Quests) {
		return domain.Quest{}, fmt.Errorf(ErrMsgQuestIndexFmt, domain.ErrQuestNotFound, index, len(st.Quests))
	}
	return st.Quests[index], nil
}

// removeAt deletes a quest and keeps the active pointer on the same running quest.
// The pointer is cleared when the removed quest held it.
func removeAt(st *domain.AppState, index int) {
	st.Quests = append(st.Quests[:index:index], st.Quests[index+1:]...)

	if st.ActiveQuest == nil {
		return
	}
	switch active := *st.ActiveQuest; {
	case active == index:
		st.ActiveQuest = nil
	case active > index:
		shifted := active - 1
		st.ActiveQuest = &shifted
	}
}
