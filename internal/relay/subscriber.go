package relay

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/QuestCraft_Go/internal/domain"
	"github.com/osse101/QuestCraft_Go/internal/event"
)

// Giver sends a give command for one item
type Giver interface {
	Give(ctx context.Context, itemID string) error
}

// Recorder observes dispatch outcomes
type Recorder interface {
	RecordRelayDispatch(outcome string)
}

// Subscriber turns committed purchases into relay commands.
// Each dispatch runs on its own goroutine with a timeout; failures are logged and dropped.
type Subscriber struct {
	giver    Giver
	bus      event.Bus
	timeout  time.Duration
	recorder Recorder

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
}

// NewSubscriber creates a relay subscriber. recorder may be nil.
func NewSubscriber(giver Giver, bus event.Bus, timeout time.Duration, recorder Recorder) *Subscriber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Subscriber{
		giver:    giver,
		bus:      bus,
		timeout:  timeout,
		recorder: recorder,
	}
}

// Subscribe registers the purchase handler
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.ItemPurchased, s.handleItemPurchased)
	slog.Info(LogMsgSubscribed, "event_type", event.ItemPurchased)
}

func (s *Subscriber) handleItemPurchased(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.ItemPurchasedPayload](evt.Payload)
	if err != nil || payload.ItemID == "" {
		slog.Warn(LogMsgInvalidPayload, "error", err)
		return nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		slog.Debug(LogMsgDroppedShutdown, "item_id", payload.ItemID)
		s.record(OutcomeDropped)
		return nil
	}
	s.pending.Add(1)
	s.mu.Unlock()

	go s.dispatch(payload.ItemID)
	return nil
}

// dispatch runs detached from the request so a finished purchase is never slowed down
func (s *Subscriber) dispatch(itemID string) {
	defer s.pending.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	slog.Debug(LogMsgDispatching, "item_id", itemID)
	if err := s.giver.Give(ctx, itemID); err != nil {
		// The relay being unavailable is expected
		slog.Warn(LogMsgDispatchFailed, "item_id", itemID, "error", err)
		s.record(OutcomeFailed)
		return
	}

	slog.Debug(LogMsgDispatched, "item_id", itemID)
	s.record(OutcomeSent)
}

func (s *Subscriber) record(outcome string) {
	if s.recorder != nil {
		s.recorder.RecordRelayDispatch(outcome)
	}
}

// Shutdown stops accepting purchases and waits for in-flight dispatches or ctx
func (s *Subscriber) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
