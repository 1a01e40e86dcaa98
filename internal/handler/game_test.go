package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/game"
	"github.com/osse101/QuestCraft_Go/internal/milestone"
	"github.com/osse101/QuestCraft_Go/internal/shop"
)

func newTestRouter(svc game.Service) http.Handler {
	h := NewGameHandler(svc)
	r := chi.NewRouter()
	r.Get("/state", h.HandleGetState)
	r.Get("/summary", h.HandleGetSummary)
	r.Post("/reset", h.HandleReset)
	r.Get("/quests", h.HandleListQuests)
	r.Post("/quests", h.HandleAddQuest)
	r.Get("/quests/{index}", h.HandleGetQuestProgress)
	r.Post("/quests/{index}/start", h.HandleStartQuest)
	r.Post("/quests/{index}/cancel", h.HandleCancelQuest)
	r.Post("/quests/{index}/complete", h.HandleCompleteQuest)
	r.Get("/daily", h.HandleGetDaily)
	r.Post("/daily/complete", h.HandleCompleteDaily)
	r.Get("/shop", h.HandleGetShop)
	r.Post("/shop/buy", h.HandleBuyItem)
	r.Get("/history", h.HandleGetHistory)
	r.Delete("/history", h.HandleClearHistory)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleAddQuest(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*game.MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: AddQuestRequest{Name: "Read", Difficulty: 2, DurationMinutes: 45},
			setupMocks: func(m *game.MockService) {
				m.On("AddQuest", mock.Anything, "Read", 2, 45).
					Return(domain.Quest{ID: "q1", Name: "Read", Difficulty: 2, Reward: 20, DurationMinutes: 45}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"reward":20`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "not-json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Validation Failure",
			requestBody:    AddQuestRequest{Name: "  ", Difficulty: 9, DurationMinutes: 45},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "Duration Too Long",
			requestBody: AddQuestRequest{Name: "Marathon", Difficulty: 5, DurationMinutes: 300},
			setupMocks: func(m *game.MockService) {
				m.On("AddQuest", mock.Anything, "Marathon", 5, 300).
					Return(domain.Quest{}, fmt.Errorf("%w: 300 > 240", domain.ErrDurationTooLong))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgDurationTooLongError,
		},
		{
			name:        "Storage Failure",
			requestBody: AddQuestRequest{Name: "Read", Difficulty: 1, DurationMinutes: 5},
			setupMocks: func(m *game.MockService) {
				m.On("AddQuest", mock.Anything, "Read", 1, 5).
					Return(domain.Quest{}, errors.New("failed to save state: disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &game.MockService{}
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}

			rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/quests", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleQuestActions(t *testing.T) {
	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	running := domain.Quest{ID: "q1", Name: "Read", Reward: 20, DurationMinutes: 45, StartTime: &started}

	tests := []struct {
		name           string
		path           string
		setupMocks     func(*game.MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Start",
			path: "/quests/0/start",
			setupMocks: func(m *game.MockService) {
				m.On("StartQuest", mock.Anything, 0).Return(running, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"startTime"`,
		},
		{
			name: "Start While Another Runs",
			path: "/quests/1/start",
			setupMocks: func(m *game.MockService) {
				m.On("StartQuest", mock.Anything, 1).Return(domain.Quest{}, domain.ErrQuestAlreadyActive)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgQuestActiveError,
		},
		{
			name: "Cancel Missing Quest",
			path: "/quests/7/cancel",
			setupMocks: func(m *game.MockService) {
				m.On("CancelQuest", mock.Anything, 7).
					Return(domain.Quest{}, fmt.Errorf("%w: index 7", domain.ErrQuestNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgQuestNotFoundError,
		},
		{
			name: "Complete Too Early",
			path: "/quests/0/complete",
			setupMocks: func(m *game.MockService) {
				m.On("CompleteQuest", mock.Anything, 0).Return(nil, domain.ErrQuestTooEarly)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgQuestTooEarlyError,
		},
		{
			name: "Complete With Milestone",
			path: "/quests/0/complete",
			setupMocks: func(m *game.MockService) {
				m.On("CompleteQuest", mock.Anything, 0).Return(&game.CompletionOutcome{
					Name:           "Read",
					Reward:         20,
					Balance:        220,
					CompletedCount: 20,
					Notices: []milestone.Notice{
						{Threshold: 20, Kind: milestone.KindTierUnlocked, Message: "unlocked"},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"kind":"tier_unlocked"`,
		},
		{
			name:           "Negative Index",
			path:           "/quests/-1/start",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidIndex,
		},
		{
			name:           "Non Numeric Index",
			path:           "/quests/abc/complete",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &game.MockService{}
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}

			rec := doRequest(t, newTestRouter(svc), http.MethodPost, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleListQuests(t *testing.T) {
	svc := &game.MockService{}
	svc.On("Quests", mock.Anything).Return(nil, nil)

	rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/quests", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandleGetQuestProgress(t *testing.T) {
	svc := &game.MockService{}
	svc.On("QuestProgress", mock.Anything, 2).Return(domain.QuestProgress{
		Index:         2,
		Percent:       50,
		RemainingText: "22 min",
	}, nil)

	rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/quests/2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"remainingText":"22 min"`)
	svc.AssertExpectations(t)
}

func TestHandleCompleteDaily(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*game.MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: CompleteDailyRequest{Name: "Lire 20 minutes"},
			setupMocks: func(m *game.MockService) {
				m.On("CompleteDaily", mock.Anything, "Lire 20 minutes").
					Return(&game.CompletionOutcome{Name: "Lire 20 minutes", Reward: 15, Balance: 15, CompletedCount: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"reward":15`,
		},
		{
			name:        "Limit Reached",
			requestBody: CompleteDailyRequest{Name: "Faire du sport"},
			setupMocks: func(m *game.MockService) {
				m.On("CompleteDaily", mock.Anything, "Faire du sport").Return(nil, domain.ErrDailyLimitReached)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgDailyLimitError,
		},
		{
			name:        "Already Done",
			requestBody: CompleteDailyRequest{Name: "Faire du sport"},
			setupMocks: func(m *game.MockService) {
				m.On("CompleteDaily", mock.Anything, "Faire du sport").Return(nil, domain.ErrDailyAlreadyCompleted)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgDailyDoneError,
		},
		{
			name:           "Missing Name",
			requestBody:    map[string]string{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"name":"This field is required"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &game.MockService{}
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}

			rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/daily/complete", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetDaily(t *testing.T) {
	svc := &game.MockService{}
	svc.On("DailyQuests", mock.Anything).Return(&game.DailyView{
		DailySelection: domain.DailySelection{
			Date:   "2026-03-01",
			Quests: []domain.DailyQuest{{Name: "Boire 1L d'eau", Reward: 10, Icon: "💧"}},
		},
		Remaining: 3,
	}, nil)

	rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/daily", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2026-03-01"`)
	assert.Contains(t, rec.Body.String(), `"remaining":3`)
	svc.AssertExpectations(t)
}

func TestHandleBuyItem(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*game.MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: BuyItemRequest{ItemID: "STONE"},
			setupMocks: func(m *game.MockService) {
				m.On("BuyItem", mock.Anything, "STONE").Return(&shop.PurchaseResult{
					Item:    domain.ShopItem{ID: "STONE", Label: "Stone", Cost: 10},
					Balance: 5,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"STONE"`,
		},
		{
			name:        "Lowercase Id",
			requestBody: BuyItemRequest{ItemID: "oak_planks"},
			setupMocks: func(m *game.MockService) {
				m.On("BuyItem", mock.Anything, "OAK_PLANKS").Return(&shop.PurchaseResult{
					Item:    domain.ShopItem{ID: "OAK_PLANKS", Label: "Oak Planks", Cost: 5},
					Balance: 0,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"OAK_PLANKS"`,
		},
		{
			name:           "Malformed Id",
			requestBody:    BuyItemRequest{ItemID: "rm -rf"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"itemId"`,
		},
		{
			name:        "Client Price Ignored",
			requestBody: map[string]interface{}{"itemId": "GLASS", "cost": 1},
			setupMocks: func(m *game.MockService) {
				m.On("BuyItem", mock.Anything, "GLASS").Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughPointsError,
		},
		{
			name:        "Locked",
			requestBody: BuyItemRequest{ItemID: "ELYTRA"},
			setupMocks: func(m *game.MockService) {
				m.On("BuyItem", mock.Anything, "ELYTRA").Return(nil, domain.ErrItemLocked)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgItemLockedError,
		},
		{
			name:        "Unknown Item",
			requestBody: BuyItemRequest{ItemID: "BEDROCK"},
			setupMocks: func(m *game.MockService) {
				m.On("BuyItem", mock.Anything, "BEDROCK").Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &game.MockService{}
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}

			rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/shop/buy", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetShop(t *testing.T) {
	next := 20
	svc := &game.MockService{}
	svc.On("ShopItems", mock.Anything).Return(&game.ShopView{
		Balance:        40,
		CompletedCount: 3,
		Items:          []domain.ShopItem{{ID: "STONE", Label: "Stone", Cost: 10}},
		NextTierAt:     &next,
	}, nil)

	rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/shop", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nextTierAt":20`)
	svc.AssertExpectations(t)
}

func TestHandleHistory(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		svc := &game.MockService{}
		svc.On("History", mock.Anything).Return([]domain.HistoryEntry{
			{Category: domain.HistoryPurchase, Text: "Stone", Amount: -10},
		}, nil)

		rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/history", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"amount":-10`)
		svc.AssertExpectations(t)
	})

	t.Run("Clear", func(t *testing.T) {
		svc := &game.MockService{}
		svc.On("ClearHistory", mock.Anything).Return(nil)

		rec := doRequest(t, newTestRouter(svc), http.MethodDelete, "/history", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgHistoryCleared)
		svc.AssertExpectations(t)
	})
}

func TestHandleStateAndSummary(t *testing.T) {
	active := 0
	svc := &game.MockService{}
	svc.On("State", mock.Anything).Return(domain.NewAppState(), nil)
	svc.On("Summary", mock.Anything).Return(&domain.Summary{
		Points:      50,
		ActiveQuest: &active,
		ActiveName:  "Read",
	}, nil)
	svc.On("Reset", mock.Anything).Return(errors.New("disk full"))

	router := newTestRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/state", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"points":0`)

	rec = doRequest(t, router, http.MethodGet, "/summary", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"activeName":"Read"`)

	rec = doRequest(t, router, http.MethodPost, "/reset", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgGenericServerError)

	svc.AssertExpectations(t)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	status, msg := mapServiceErrorToUserMessage(nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ErrMsgUnknownError, msg)

	status, msg = mapServiceErrorToUserMessage(fmt.Errorf("wrap: %w", fmt.Errorf("%w: x", domain.ErrQuestNotStarted)))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, ErrMsgQuestNotStartedError, msg)
}
