package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const readinessTimeout = 2 * time.Second

// HealthResponse is the body of the probe endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Pinger is any backend that can report connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz answers as long as the process serves HTTP
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports whether the state store answers, with the round trip time
func HandleReadyz(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		start := time.Now()
		err := store.Ping(ctx)
		elapsed := time.Since(start).Round(time.Millisecond)

		if err != nil {
			slog.Error(LogMsgReadinessFailed, "error", err, "elapsed", elapsed)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "storage unreachable",
				Checks:  map[string]string{"storage": "failed"},
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status: "ok",
			Checks: map[string]string{"storage": "ok " + elapsed.String()},
		})
	}
}
