package sse

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// KeepaliveInterval spaces the comment lines that keep idle proxies from closing the stream
var KeepaliveInterval = 30 * time.Second

// retryMillis tells EventSource clients how long to wait before reconnecting
const retryMillis = 3000

// Handler streams the live feed. Clients narrow it with ?types=a,b and resume
// after a drop through the Last-Event-ID header.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		var types []string
		for _, t := range strings.Split(r.URL.Query().Get("types"), ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}

		client, missed := hub.Register(types, r.Header.Get("Last-Event-ID"))
		defer hub.Unregister(client.ID)

		log := slog.With("client_id", client.ID)
		log.Info("Live feed client connected", "types", types, "replayed", len(missed))
		defer log.Info("Live feed client disconnected")

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		send := func(e Event) bool {
			msg, err := Encode(e)
			if err != nil {
				log.Error("Dropping unencodable event", "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				return false
			}
			flusher.Flush()
			return true
		}

		if _, err := w.Write([]byte(fmt.Sprintf("retry: %d\n: connected %s\n\n", retryMillis, client.ID))); err != nil {
			return
		}
		flusher.Flush()

		for _, e := range missed {
			if !send(e) {
				return
			}
		}

		keepalive := time.NewTicker(KeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case e, open := <-client.Events:
				if !open {
					return
				}
				if !send(e) {
					return
				}
			case <-keepalive.C:
				if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
