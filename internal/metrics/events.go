package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/event"
	"github.com/osse101/QuestCraft_Go/internal/logger"
)

type recorder func(evt event.Event) error

// typed decodes the payload before handing it to fn
func typed[T any](fn func(T)) recorder {
	return func(evt event.Event) error {
		payload, err := event.DecodePayload[T](evt.Payload)
		if err != nil {
			return err
		}
		fn(payload)
		return nil
	}
}

func untyped(fn func()) recorder {
	return func(event.Event) error {
		fn()
		return nil
	}
}

var recorders = map[event.Type]recorder{
	event.QuestCompleted: typed(func(p domain.QuestEventPayload) {
		QuestsCompleted.WithLabelValues(KindTimed).Inc()
		PointsEarned.Add(float64(p.Reward))
	}),
	event.DailyCompleted: typed(func(p domain.DailyCompletedPayload) {
		QuestsCompleted.WithLabelValues(KindDaily).Inc()
		PointsEarned.Add(float64(p.Reward))
		DailyCompletedToday.Set(float64(p.CompletedToday))
	}),
	event.DailyRolled:    untyped(func() { DailyCompletedToday.Set(0) }),
	event.QuestCancelled: untyped(QuestsCancelled.Inc),
	event.ItemPurchased: typed(func(p domain.ItemPurchasedPayload) {
		ItemsBought.WithLabelValues(p.ItemID).Inc()
		PointsSpent.Add(float64(p.Cost))
		PointsBalance.Set(float64(p.Balance))
	}),
	event.GameCompleted: untyped(GamesCompleted.Inc),
	event.MilestoneReached: typed(func(p domain.MilestonePayload) {
		MilestonesReached.WithLabelValues(strconv.Itoa(p.Threshold), p.Kind).Inc()
	}),
	event.StateReset: untyped(func() {
		PointsBalance.Set(0)
		DailyCompletedToday.Set(0)
	}),
}

// EventMetricsCollector turns bus traffic into Prometheus series
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the game publishes
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.QuestAdded, event.QuestStarted, event.QuestCancelled, event.QuestCompleted,
		event.DailyCompleted, event.DailyRolled, event.ItemPurchased, event.GameCompleted,
		event.MilestoneReached, event.HistoryCleared, event.StateReset,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent never fails the publisher; undecodable payloads are only logged
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	rec, ok := recorders[evt.Type]
	if !ok {
		return nil
	}
	if err := rec(evt); err != nil {
		logger.FromContext(ctx).Debug("Event payload could not be decoded", "type", evt.Type, "error", err)
	}
	return nil
}
