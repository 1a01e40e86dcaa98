package daily

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

// ShuffleFunc permutes n elements through swap
type ShuffleFunc func(n int, swap func(i, j int))

// Selector draws the daily quests from a fixed pool
type Selector struct {
	pool    []domain.DailyQuest
	shuffle ShuffleFunc
}

// NewSelector creates a selector over pool using a uniform random shuffle
func NewSelector(pool []domain.DailyQuest) *Selector {
	return &Selector{
		pool:    pool,
		shuffle: rand.Shuffle,
	}
}

// NewSelectorWithShuffle creates a selector with a custom permutation, used by tests
func NewSelectorWithShuffle(pool []domain.DailyQuest, shuffle ShuffleFunc) *Selector {
	return &Selector{pool: pool, shuffle: shuffle}
}

// Pool returns a copy of the pool entries
func (s *Selector) Pool() []domain.DailyQuest {
	out := make([]domain.DailyQuest, len(s.pool))
	copy(out, s.pool)
	return out
}

// Today formats now as the calendar day in loc
func Today(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return now.Format(domain.DailyDateLayout)
}

// Select returns the selection for today.
// A stored selection for the same day is returned unchanged; otherwise a new one is drawn
// with its counter reset and isNewDay set. The caller persists the result.
func (s *Selector) Select(stored *domain.DailySelection, today string) (domain.DailySelection, bool) {
	if stored != nil && stored.Date == today && len(stored.Quests) == domain.DailyQuestsPerDay {
		return *stored, false
	}

	poolCopy := make([]domain.DailyQuest, len(s.pool))
	copy(poolCopy, s.pool)
	s.shuffle(len(poolCopy), func(i, j int) {
		poolCopy[i], poolCopy[j] = poolCopy[j], poolCopy[i]
	})

	return domain.DailySelection{
		Date:           today,
		Quests:         poolCopy[:domain.DailyQuestsPerDay:domain.DailyQuestsPerDay],
		CompletedToday: 0,
		Completed:      []string{},
	}, true
}

// Complete checks the named quest of the selection.
// It fails once three quests are done today, for names outside the selection,
// and for a quest already checked today.
func Complete(sel *domain.DailySelection, name string, now time.Time) (int, domain.HistoryEntry, error) {
	if sel.CompletedToday >= domain.DailyQuestsPerDay {
		return 0, domain.HistoryEntry{}, fmt.Errorf(ErrMsgLimitFmt, domain.ErrDailyLimitReached, sel.CompletedToday, domain.DailyQuestsPerDay)
	}

	q, ok := sel.Find(name)
	if !ok {
		return 0, domain.HistoryEntry{}, fmt.Errorf(ErrMsgNotSelectedFmt, domain.ErrDailyQuestNotFound, name)
	}
	if sel.IsCompleted(name) {
		return 0, domain.HistoryEntry{}, fmt.Errorf(ErrMsgAlreadyDoneFmt, domain.ErrDailyAlreadyCompleted, name)
	}

	sel.CompletedToday++
	sel.Completed = append(sel.Completed, name)

	entry := domain.HistoryEntry{
		Category: domain.HistoryDaily,
		Text:     fmt.Sprintf(HistoryTextCompletedFmt, q.Icon, q.Name, q.Reward),
		Amount:   q.Reward,
		At:       now,
	}
	return q.Reward, entry, nil
}
