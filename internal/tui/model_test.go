package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/game"
)

func intPtr(i int) *int { return &i }

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleLoad() loadedMsg {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return loadedMsg{
		summary: &domain.Summary{Points: 42, CompletedCount: 3, NextTierAt: intPtr(20), ActiveQuest: intPtr(0)},
		progress: []domain.QuestProgress{
			{
				Index:         0,
				Quest:         domain.Quest{Name: "Read a chapter", Difficulty: 2, DurationMinutes: 30, StartTime: &start},
				Started:       true,
				Percent:       50,
				RemainingText: "15 min",
			},
			{
				Index: 1,
				Quest: domain.Quest{Name: "Stretch", Difficulty: 1, DurationMinutes: 10},
			},
		},
		daily: &game.DailyView{
			DailySelection: domain.DailySelection{
				Date: "2026-03-01",
				Quests: []domain.DailyQuest{
					{Name: "Boire 2L d'eau", Reward: 5, Icon: "💧"},
					{Name: "Marcher 30 min", Reward: 10, Icon: "🚶"},
					{Name: "Lire 10 pages", Reward: 8, Icon: "📖"},
				},
			},
			Remaining: 3,
		},
	}
}

func loadedModel(svc game.Service) watchModel {
	m := newWatchModel(context.Background(), svc)
	next, _ := m.Update(sampleLoad())
	return next.(watchModel)
}

func TestWatchModel_LoadCmd(t *testing.T) {
	svc := new(game.MockService)
	want := sampleLoad()
	svc.On("Summary", mock.Anything).Return(want.summary, nil)
	svc.On("Quests", mock.Anything).Return(want.progress, nil)
	svc.On("DailyQuests", mock.Anything).Return(want.daily, nil)

	m := newWatchModel(context.Background(), svc)
	msg := m.loadCmd()()

	loaded, ok := msg.(loadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Equal(t, 42, loaded.summary.Points)
	assert.Len(t, loaded.progress, 2)
	svc.AssertExpectations(t)
}

func TestWatchModel_LoadError(t *testing.T) {
	svc := new(game.MockService)
	svc.On("Summary", mock.Anything).Return(nil, errors.New("store down"))

	m := newWatchModel(context.Background(), svc)
	next, _ := m.Update(m.loadCmd()())

	view := next.View()
	assert.Contains(t, view, "store down")
	assert.Contains(t, view, "Press r to retry")
}

func TestWatchModel_View(t *testing.T) {
	m := loadedModel(new(game.MockService))
	view := m.View()

	assert.Contains(t, view, "QuestCraft")
	assert.Contains(t, view, "Read a chapter")
	assert.Contains(t, view, "Stretch")
	assert.Contains(t, view, "15 min")
	assert.Contains(t, view, "(next tier at 20)")
	assert.Contains(t, view, "Marcher 30 min")
	assert.Contains(t, view, "3 left today")
}

func TestWatchModel_CompleteSelected(t *testing.T) {
	svc := new(game.MockService)
	svc.On("CompleteQuest", mock.Anything, 0).Return(&game.CompletionOutcome{
		Name:    "Read a chapter",
		Reward:  20,
		Balance: 62,
	}, nil)

	m := loadedModel(svc)
	_, cmd := m.Update(keyMsg("c"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(actionMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	assert.Contains(t, msg.text, "Read a chapter")
	assert.Contains(t, msg.text, "balance 62")
	svc.AssertExpectations(t)
}

func TestWatchModel_StartAfterMovingCursor(t *testing.T) {
	svc := new(game.MockService)
	svc.On("StartQuest", mock.Anything, 1).Return(domain.Quest{Name: "Stretch"}, nil)

	m := loadedModel(svc)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(watchModel)

	_, cmd := m.Update(keyMsg("s"))
	require.NotNil(t, cmd)
	msg := cmd().(actionMsg)
	require.NoError(t, msg.err)
	assert.Contains(t, msg.text, "Started \"Stretch\"")
	svc.AssertExpectations(t)
}

func TestWatchModel_CompleteDailyByNumber(t *testing.T) {
	svc := new(game.MockService)
	svc.On("CompleteDaily", mock.Anything, "Marcher 30 min").Return(nil, domain.ErrDailyLimitReached)

	m := loadedModel(svc)
	_, cmd := m.Update(keyMsg("2"))
	require.NotNil(t, cmd)

	msg := cmd().(actionMsg)
	require.ErrorIs(t, msg.err, domain.ErrDailyLimitReached)

	next, _ := m.Update(msg)
	assert.Contains(t, next.(watchModel).lastLog, domain.ErrMsgDailyLimitReached)
	svc.AssertExpectations(t)
}

func TestWatchModel_NoQuestSelected(t *testing.T) {
	m := newWatchModel(context.Background(), new(game.MockService))
	next, cmd := m.Update(keyMsg("c"))

	assert.Nil(t, cmd)
	assert.Equal(t, "No quest selected.", next.(watchModel).lastLog)
}

func TestWatchModel_Quit(t *testing.T) {
	m := loadedModel(new(game.MockService))
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
