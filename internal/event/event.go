package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

// SchemaVersion is stamped on every event the game service publishes
const SchemaVersion = "1.0"

const errFmtHandlers = "%d handler(s) failed for %s: %v"

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types published by the game service
const (
	QuestAdded       Type = domain.EventTypeQuestAdded
	QuestStarted     Type = domain.EventTypeQuestStarted
	QuestCancelled   Type = domain.EventTypeQuestCancelled
	QuestCompleted   Type = domain.EventTypeQuestCompleted
	DailyCompleted   Type = domain.EventTypeDailyCompleted
	DailyRolled      Type = domain.EventTypeDailyRolled
	ItemPurchased    Type = domain.EventTypeItemPurchased
	GameCompleted    Type = domain.EventTypeGameCompleted
	MilestoneReached Type = domain.EventTypeMilestoneReached
	HistoryCleared   Type = domain.EventTypeHistoryCleared
	StateReset       Type = domain.EventTypeStateReset
)

// Type-safe event constructors

func newQuestEvent(t Type, q domain.Quest, reward int, at time.Time) Event {
	return Event{
		Version: SchemaVersion,
		Type:    t,
		Payload: domain.QuestEventPayload{
			QuestID:   q.ID,
			QuestName: q.Name,
			Reward:    reward,
			Timestamp: at.Unix(),
		},
	}
}

// NewQuestAddedEvent creates a quest.added event
func NewQuestAddedEvent(q domain.Quest, at time.Time) Event {
	return newQuestEvent(QuestAdded, q, q.Reward, at)
}

// NewQuestStartedEvent creates a quest.started event
func NewQuestStartedEvent(q domain.Quest, at time.Time) Event {
	return newQuestEvent(QuestStarted, q, 0, at)
}

// NewQuestCancelledEvent creates a quest.cancelled event
func NewQuestCancelledEvent(q domain.Quest, at time.Time) Event {
	return newQuestEvent(QuestCancelled, q, 0, at)
}

// NewQuestCompletedEvent creates a quest.completed event carrying the credited reward
func NewQuestCompletedEvent(q domain.Quest, reward int, at time.Time) Event {
	return newQuestEvent(QuestCompleted, q, reward, at)
}

// NewDailyCompletedEvent creates a daily.completed event
func NewDailyCompletedEvent(name string, reward, completedToday int, at time.Time) Event {
	return Event{
		Version: SchemaVersion,
		Type:    DailyCompleted,
		Payload: domain.DailyCompletedPayload{
			QuestName:      name,
			Reward:         reward,
			CompletedToday: completedToday,
			Timestamp:      at.Unix(),
		},
	}
}

// NewDailyRolledEvent creates a daily.rolled event for a freshly drawn selection
func NewDailyRolledEvent(sel domain.DailySelection) Event {
	names := make([]string, len(sel.Quests))
	for i, q := range sel.Quests {
		names[i] = q.Name
	}
	return Event{
		Version: SchemaVersion,
		Type:    DailyRolled,
		Payload: domain.DailyRolledPayload{
			Date:   sel.Date,
			Quests: names,
		},
	}
}

// NewItemPurchasedEvent creates an item.purchased event
func NewItemPurchasedEvent(item domain.ShopItem, balance int, at time.Time) Event {
	return Event{
		Version: SchemaVersion,
		Type:    ItemPurchased,
		Payload: domain.ItemPurchasedPayload{
			ItemID:    item.ID,
			Cost:      item.Cost,
			Balance:   balance,
			Timestamp: at.Unix(),
		},
	}
}

// NewGameCompletedEvent creates a game.completed event
func NewGameCompletedEvent(item domain.ShopItem, balance int, at time.Time) Event {
	e := NewItemPurchasedEvent(item, balance, at)
	e.Type = GameCompleted
	return e
}

// NewMilestoneEvent creates a milestone.reached event
func NewMilestoneEvent(threshold int, kind, message string) Event {
	return Event{
		Version: SchemaVersion,
		Type:    MilestoneReached,
		Payload: domain.MilestonePayload{
			Threshold: threshold,
			Kind:      kind,
			Message:   message,
		},
		Metadata: map[string]interface{}{
			"kind": kind,
		},
	}
}

// NewHistoryClearedEvent creates a history.cleared event
func NewHistoryClearedEvent(entries int) Event {
	return Event{
		Version:  SchemaVersion,
		Type:     HistoryCleared,
		Metadata: map[string]interface{}{"entries": entries},
	}
}

// NewStateResetEvent creates a state.reset event
func NewStateResetEvent() Event {
	return Event{
		Version: SchemaVersion,
		Type:    StateReset,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously; slow work must be handed off by the subscriber.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(errFmtHandlers, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
