package quest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLedger() (*Ledger, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	return NewLedger(clock.Now), clock
}

func TestAdd_Valid(t *testing.T) {
	l, _ := newTestLedger()

	for difficulty := domain.MinDifficulty; difficulty <= domain.MaxDifficulty; difficulty++ {
		for _, duration := range []int{1, 30, 60, 239, 240} {
			st := domain.NewAppState()
			q, err := l.Add(st, "Read a book", difficulty, duration)
			require.NoError(t, err)

			assert.Equal(t, difficulty*10, q.Reward)
			assert.Nil(t, q.StartTime)
			assert.NotEmpty(t, q.ID)
			require.Len(t, st.Quests, 1)
			assert.Equal(t, q, st.Quests[0])
		}
	}
}

func TestAdd_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		questName  string
		difficulty int
		duration   int
		wantErr    error
	}{
		{"empty name", "", 3, 30, domain.ErrInvalidInput},
		{"blank name", "   ", 3, 30, domain.ErrInvalidInput},
		{"name too long", strings.Repeat("x", domain.MaxQuestNameLength+1), 3, 30, domain.ErrInvalidInput},
		{"zero duration", "Run", 3, 0, domain.ErrInvalidInput},
		{"negative duration", "Run", 3, -5, domain.ErrInvalidInput},
		{"difficulty too low", "Run", 0, 30, domain.ErrInvalidInput},
		{"difficulty too high", "Run", 6, 30, domain.ErrInvalidInput},
		{"duration too long", "Run", 3, 241, domain.ErrDurationTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLedger()
			st := domain.NewAppState()

			_, err := l.Add(st, tt.questName, tt.difficulty, tt.duration)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, st.Quests)
		})
	}
}

func TestStart_SingleActiveQuest(t *testing.T) {
	l, clock := newTestLedger()
	st := domain.NewAppState()
	_, _ = l.Add(st, "A", 1, 10)
	_, _ = l.Add(st, "B", 2, 20)

	q, entry, err := l.Start(st, 1)
	require.NoError(t, err)
	require.NotNil(t, q.StartTime)
	assert.Equal(t, clock.now, *q.StartTime)
	assert.Equal(t, domain.HistoryStart, entry.Category)
	assert.Zero(t, entry.Amount)
	require.NotNil(t, st.ActiveQuest)
	assert.Equal(t, 1, *st.ActiveQuest)

	_, _, err = l.Start(st, 0)
	assert.ErrorIs(t, err, domain.ErrQuestAlreadyActive)
	assert.Nil(t, st.Quests[0].StartTime)

	_, _, err = l.Start(st, 1)
	assert.ErrorIs(t, err, domain.ErrQuestAlreadyActive)
}

func TestStart_OutOfRange(t *testing.T) {
	l, _ := newTestLedger()
	st := domain.NewAppState()

	_, _, err := l.Start(st, 0)
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)

	_, _, err = l.Start(st, -1)
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)
}

func TestCancel(t *testing.T) {
	t.Run("active quest clears pointer", func(t *testing.T) {
		l, _ := newTestLedger()
		st := domain.NewAppState()
		_, _ = l.Add(st, "A", 1, 10)
		_, _, _ = l.Start(st, 0)

		q, entry, err := l.Cancel(st, 0)
		require.NoError(t, err)
		assert.Equal(t, "A", q.Name)
		assert.Equal(t, domain.HistoryCancel, entry.Category)
		assert.Empty(t, st.Quests)
		assert.Nil(t, st.ActiveQuest)
	})

	t.Run("earlier quest shifts pointer", func(t *testing.T) {
		l, _ := newTestLedger()
		st := domain.NewAppState()
		_, _ = l.Add(st, "A", 1, 10)
		_, _ = l.Add(st, "B", 1, 10)
		_, _, _ = l.Start(st, 1)

		_, _, err := l.Cancel(st, 0)
		require.NoError(t, err)
		require.NotNil(t, st.ActiveQuest)
		assert.Equal(t, 0, *st.ActiveQuest)
		assert.Equal(t, "B", st.Quests[*st.ActiveQuest].Name)
	})

	t.Run("later quest keeps pointer", func(t *testing.T) {
		l, _ := newTestLedger()
		st := domain.NewAppState()
		_, _ = l.Add(st, "A", 1, 10)
		_, _ = l.Add(st, "B", 1, 10)
		_, _, _ = l.Start(st, 0)

		_, _, err := l.Cancel(st, 1)
		require.NoError(t, err)
		require.NotNil(t, st.ActiveQuest)
		assert.Equal(t, 0, *st.ActiveQuest)
	})

	t.Run("out of range", func(t *testing.T) {
		l, _ := newTestLedger()
		st := domain.NewAppState()
		_, _, err := l.Cancel(st, 3)
		assert.ErrorIs(t, err, domain.ErrQuestNotFound)
	})
}

func TestComplete_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{"89 percent", 89 * time.Minute, domain.ErrQuestTooEarly},
		{"just under 90 percent", 90*time.Minute - time.Second, domain.ErrQuestTooEarly},
		{"90 percent", 90 * time.Minute, nil},
		{"overtime", 5 * time.Hour, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, clock := newTestLedger()
			st := domain.NewAppState()
			_, _ = l.Add(st, "Study", 4, 100)
			_, _, err := l.Start(st, 0)
			require.NoError(t, err)

			clock.Advance(tt.elapsed)
			res, err := l.Complete(st, 0)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				assert.Len(t, st.Quests, 1)
				assert.NotNil(t, st.ActiveQuest)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 40, res.Reward)
			assert.Equal(t, domain.HistoryTimed, res.Entry.Category)
			assert.Equal(t, 40, res.Entry.Amount)
			assert.Empty(t, st.Quests)
			assert.Nil(t, st.ActiveQuest)
		})
	}
}

func TestComplete_NotStarted(t *testing.T) {
	l, _ := newTestLedger()
	st := domain.NewAppState()
	_, _ = l.Add(st, "Study", 1, 10)

	_, err := l.Complete(st, 0)
	assert.ErrorIs(t, err, domain.ErrQuestNotStarted)
	assert.Len(t, st.Quests, 1)
}

func TestRequiredElapsed(t *testing.T) {
	assert.Equal(t, 9*time.Minute, RequiredElapsed(domain.Quest{DurationMinutes: 10}))
	assert.Equal(t, 54*time.Second, RequiredElapsed(domain.Quest{DurationMinutes: 1}))
	assert.Equal(t, 216*time.Minute, RequiredElapsed(domain.Quest{DurationMinutes: 240}))
}
