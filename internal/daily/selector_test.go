package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

func reverseShuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func TestLoadPool_Default(t *testing.T) {
	pool, err := LoadPool("")
	require.NoError(t, err)
	assert.Len(t, pool, 15)

	names := make(map[string]bool)
	for _, q := range pool {
		assert.False(t, names[q.Name], "duplicate %s", q.Name)
		names[q.Name] = true
		assert.Positive(t, q.Reward)
		assert.NotEmpty(t, q.Icon)
	}
}

func TestParsePool_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed", `{"quest_pool": [`, "failed to parse"},
		{"too small", `{"quest_pool": [{"name":"a","reward":1},{"name":"b","reward":1}]}`, domain.ErrMsgDailyPoolTooSmall},
		{"duplicate", `{"quest_pool": [{"name":"a","reward":1},{"name":"b","reward":1},{"name":"a","reward":2}]}`, domain.ErrMsgDailyPoolDuplicateName},
		{"zero reward", `{"quest_pool": [{"name":"a","reward":1},{"name":"b","reward":0},{"name":"c","reward":2}]}`, domain.ErrMsgInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePool([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSelect_NewDay(t *testing.T) {
	pool, err := LoadPool("")
	require.NoError(t, err)
	s := NewSelectorWithShuffle(pool, reverseShuffle)

	sel, isNew := s.Select(nil, "2026-03-01")

	assert.True(t, isNew)
	assert.Equal(t, "2026-03-01", sel.Date)
	assert.Equal(t, 0, sel.CompletedToday)
	require.Len(t, sel.Quests, domain.DailyQuestsPerDay)
	assert.Equal(t, pool[14], sel.Quests[0])
	assert.Equal(t, pool[13], sel.Quests[1])
	assert.Equal(t, pool[12], sel.Quests[2])
	assert.Equal(t, "Lire 20 minutes", pool[0].Name, "pool must not be reordered")
}

func TestSelect_SameDayIsStable(t *testing.T) {
	pool, err := LoadPool("")
	require.NoError(t, err)
	s := NewSelector(pool)

	first, isNew := s.Select(nil, "2026-03-01")
	require.True(t, isNew)
	first.CompletedToday = 2

	second, isNew := s.Select(&first, "2026-03-01")
	assert.False(t, isNew)
	assert.Equal(t, first, second)
}

func TestSelect_NextDayResetsCounter(t *testing.T) {
	pool, err := LoadPool("")
	require.NoError(t, err)
	s := NewSelector(pool)

	first, _ := s.Select(nil, "2026-03-01")
	first.CompletedToday = 3
	first.Completed = []string{first.Quests[0].Name}

	next, isNew := s.Select(&first, "2026-03-02")
	assert.True(t, isNew)
	assert.Equal(t, 0, next.CompletedToday)
	assert.Empty(t, next.Completed)

	inPool := make(map[string]bool)
	for _, q := range pool {
		inPool[q.Name] = true
	}
	seen := make(map[string]bool)
	for _, q := range next.Quests {
		assert.True(t, inPool[q.Name])
		assert.False(t, seen[q.Name], "selection must be distinct")
		seen[q.Name] = true
	}
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sel := domain.DailySelection{
		Date: "2026-03-01",
		Quests: []domain.DailyQuest{
			{Name: "Lire 20 minutes", Reward: 15, Icon: "📖"},
			{Name: "Faire du sport", Reward: 25, Icon: "🏃"},
			{Name: "Méditer 10 minutes", Reward: 10, Icon: "🧘"},
		},
	}

	reward, entry, err := Complete(&sel, "Faire du sport", now)
	require.NoError(t, err)
	assert.Equal(t, 25, reward)
	assert.Equal(t, domain.HistoryDaily, entry.Category)
	assert.Equal(t, 25, entry.Amount)
	assert.Equal(t, now, entry.At)
	assert.Contains(t, entry.Text, "Faire du sport")
	assert.Equal(t, 1, sel.CompletedToday)

	t.Run("same quest twice", func(t *testing.T) {
		_, _, err := Complete(&sel, "Faire du sport", now)
		assert.ErrorIs(t, err, domain.ErrDailyAlreadyCompleted)
		assert.Equal(t, 1, sel.CompletedToday)
	})

	t.Run("not in selection", func(t *testing.T) {
		_, _, err := Complete(&sel, "Cuisiner quelque chose", now)
		assert.ErrorIs(t, err, domain.ErrDailyQuestNotFound)
	})

	t.Run("limit", func(t *testing.T) {
		_, _, err := Complete(&sel, "Lire 20 minutes", now)
		require.NoError(t, err)
		_, _, err = Complete(&sel, "Méditer 10 minutes", now)
		require.NoError(t, err)
		assert.Equal(t, 3, sel.CompletedToday)

		_, _, err = Complete(&sel, "Lire 20 minutes", now)
		assert.ErrorIs(t, err, domain.ErrDailyLimitReached)
		assert.Equal(t, 3, sel.CompletedToday)
	})
}

func TestToday(t *testing.T) {
	now := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01", Today(now, time.UTC))

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata not available")
	}
	assert.Equal(t, "2026-03-02", Today(now, paris))
}
