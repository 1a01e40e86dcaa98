package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/QuestCraft_Go/internal/event"
)

// StreamedEventTypes are forwarded verbatim to SSE clients
var StreamedEventTypes = []event.Type{
	event.QuestAdded,
	event.QuestStarted,
	event.QuestCancelled,
	event.QuestCompleted,
	event.DailyCompleted,
	event.DailyRolled,
	event.ItemPurchased,
	event.GameCompleted,
	event.MilestoneReached,
	event.HistoryCleared,
	event.StateReset,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every streamed event type
func (s *Subscriber) Subscribe() {
	types := make([]string, len(StreamedEventTypes))
	for i, t := range StreamedEventTypes {
		s.bus.Subscribe(t, s.forward)
		types[i] = string(t)
	}
	slog.Info("Live feed subscribed to bus", "types", types)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	payload := evt.Payload
	if payload == nil {
		payload = evt.Metadata
	}

	sent := s.hub.Broadcast(string(evt.Type), payload)
	slog.Debug("Live feed event", "event_type", evt.Type, "id", sent.ID)
	return nil
}
