package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/shop"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) State(ctx context.Context) (*domain.AppState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppState), args.Error(1)
}

func (m *MockService) Summary(ctx context.Context) (*domain.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockService) AddQuest(ctx context.Context, name string, difficulty, durationMinutes int) (domain.Quest, error) {
	args := m.Called(ctx, name, difficulty, durationMinutes)
	return args.Get(0).(domain.Quest), args.Error(1)
}

func (m *MockService) StartQuest(ctx context.Context, index int) (domain.Quest, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(domain.Quest), args.Error(1)
}

func (m *MockService) CancelQuest(ctx context.Context, index int) (domain.Quest, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(domain.Quest), args.Error(1)
}

func (m *MockService) CompleteQuest(ctx context.Context, index int) (*CompletionOutcome, error) {
	args := m.Called(ctx, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CompletionOutcome), args.Error(1)
}

func (m *MockService) Quests(ctx context.Context) ([]domain.QuestProgress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuestProgress), args.Error(1)
}

func (m *MockService) QuestProgress(ctx context.Context, index int) (domain.QuestProgress, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(domain.QuestProgress), args.Error(1)
}

func (m *MockService) DailyQuests(ctx context.Context) (*DailyView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DailyView), args.Error(1)
}

func (m *MockService) CompleteDaily(ctx context.Context, name string) (*CompletionOutcome, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CompletionOutcome), args.Error(1)
}

func (m *MockService) ShopItems(ctx context.Context) (*ShopView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ShopView), args.Error(1)
}

func (m *MockService) BuyItem(ctx context.Context, itemID string) (*shop.PurchaseResult, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.PurchaseResult), args.Error(1)
}

func (m *MockService) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *MockService) ClearHistory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockService) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
