package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/logger"
)

// Gateway serializes the whole app state to and from a Store
type Gateway struct {
	store Store
}

// NewGateway creates a gateway over store
func NewGateway(store Store) *Gateway {
	return &Gateway{store: store}
}

// Store returns the underlying store
func (g *Gateway) Store() Store {
	return g.store
}

// Save rewrites the whole state blob
func (g *Gateway) Save(ctx context.Context, st *domain.AppState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalFmt, KeyGameData, err)
	}
	return g.store.Put(ctx, KeyGameData, data)
}

// Load returns the saved state.
// A missing or unreadable blob yields the empty default state; only store failures are returned.
func (g *Gateway) Load(ctx context.Context) (*domain.AppState, error) {
	log := logger.FromContext(ctx)

	data, err := g.store.Get(ctx, KeyGameData)
	if errors.Is(err, domain.ErrKeyNotFound) {
		log.Info(LogMsgNoSavedState)
		return domain.NewAppState(), nil
	}
	if err != nil {
		return nil, err
	}

	st := domain.NewAppState()
	if err := json.Unmarshal(data, st); err != nil {
		log.Warn(LogMsgCorruptBlob, "key", KeyGameData, "error", err)
		return domain.NewAppState(), nil
	}
	st.Normalize()

	log.Info(LogMsgStateLoaded, "points", st.Points, "quests", len(st.Quests), "history", len(st.History))
	return st, nil
}

// SaveDaily stores the drawn quests and their date under separate keys
func (g *Gateway) SaveDaily(ctx context.Context, sel domain.DailySelection) error {
	data, err := json.Marshal(sel.Quests)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalFmt, KeyDailyQuests, err)
	}
	if err := g.store.Put(ctx, KeyDailyQuests, data); err != nil {
		return err
	}
	return g.store.Put(ctx, KeyDailyQuestsDate, []byte(sel.Date))
}

// LoadDaily returns the stored selection without its counters, or nil when none is usable
func (g *Gateway) LoadDaily(ctx context.Context) (*domain.DailySelection, error) {
	log := logger.FromContext(ctx)

	date, err := g.store.Get(ctx, KeyDailyQuestsDate)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	data, err := g.store.Get(ctx, KeyDailyQuests)
	if errors.Is(err, domain.ErrKeyNotFound) {
		log.Warn(LogMsgDailyIncomplete, "missing", KeyDailyQuests)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var quests []domain.DailyQuest
	if err := json.Unmarshal(data, &quests); err != nil {
		log.Warn(LogMsgCorruptBlob, "key", KeyDailyQuests, "error", err)
		return nil, nil
	}

	return &domain.DailySelection{
		Date:   string(date),
		Quests: quests,
	}, nil
}

// ClearDaily removes the stored selection
func (g *Gateway) ClearDaily(ctx context.Context) error {
	return g.store.Delete(ctx, KeyDailyQuests, KeyDailyQuestsDate)
}

// Clear removes every persisted key
func (g *Gateway) Clear(ctx context.Context) error {
	return g.store.Delete(ctx, KeyGameData, KeyDailyQuests, KeyDailyQuestsDate)
}
