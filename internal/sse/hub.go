package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// clientBuffer bounds how far a client may fall behind before events are skipped
	clientBuffer = 50
	// replaySize is how many recent events a reconnecting client can catch up on
	replaySize = 64
)

// Event is one message of the live feed. IDs increase monotonically per hub.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a registered listener
type Client struct {
	ID      string
	Events  <-chan Event
	events  chan Event
	filter  map[string]struct{} // empty means every type
	dropped int
}

func (c *Client) wants(eventType string) bool {
	if len(c.filter) == 0 {
		return true
	}
	_, ok := c.filter[eventType]
	return ok
}

// Hub fans events out to connected clients and keeps a short replay log
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	recent  []Event
	seq     uint64
	closed  bool
	now     func() time.Time
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		now:     time.Now,
	}
}

// Register adds a client interested in eventTypes (all when empty). Events newer than
// lastEventID are returned so a reconnecting client misses nothing still in the log.
func (h *Hub) Register(eventTypes []string, lastEventID string) (*Client, []Event) {
	ch := make(chan Event, clientBuffer)
	c := &Client{
		ID:     uuid.NewString(),
		Events: ch,
		events: ch,
		filter: make(map[string]struct{}, len(eventTypes)),
	}
	for _, t := range eventTypes {
		c.filter[t] = struct{}{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return c, nil
	}
	h.clients[c.ID] = c
	return c, h.backlog(c, lastEventID)
}

// backlog must be called with the lock held
func (h *Hub) backlog(c *Client, lastEventID string) []Event {
	if lastEventID == "" {
		return nil
	}
	last, err := strconv.ParseUint(lastEventID, 10, 64)
	if err != nil {
		return nil
	}

	var missed []Event
	for _, e := range h.recent {
		id, _ := strconv.ParseUint(e.ID, 10, 64)
		if id > last && c.wants(e.Type) {
			missed = append(missed, e)
		}
	}
	return missed
}

// Unregister removes the client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[clientID]
	if !ok {
		return
	}
	delete(h.clients, clientID)
	close(c.events)
	if c.dropped > 0 {
		slog.Warn("Live feed client fell behind", "client_id", clientID, "dropped", c.dropped)
	}
}

// Broadcast stamps the payload with the next id and hands it to every interested client.
// Slow clients skip the event instead of blocking the publisher.
func (h *Hub) Broadcast(eventType string, payload interface{}) Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	e := Event{
		ID:        strconv.FormatUint(h.seq, 10),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}
	if h.closed {
		return e
	}

	h.recent = append(h.recent, e)
	if len(h.recent) > replaySize {
		h.recent = h.recent[len(h.recent)-replaySize:]
	}

	for _, c := range h.clients {
		if !c.wants(eventType) {
			continue
		}
		select {
		case c.events <- e:
		default:
			c.dropped++
		}
	}
	return e
}

// Close disconnects every client. Later registrations get a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, c := range h.clients {
		close(c.events)
		delete(h.clients, id)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Encode renders an event in text/event-stream framing
func Encode(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", e.Type, err)
	}
	return []byte(fmt.Sprintf("id: %s\nevent: %s\ndata: %s\n\n", e.ID, e.Type, data)), nil
}
