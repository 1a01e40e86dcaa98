package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/QuestCraft_Go/internal/game"
	"github.com/osse101/QuestCraft_Go/internal/handler"
	"github.com/osse101/QuestCraft_Go/internal/logger"
	"github.com/osse101/QuestCraft_Go/internal/metrics"
	"github.com/osse101/QuestCraft_Go/internal/sse"
)

const maxBodyBytes = 1 << 20

// Options wires the router to the running game
type Options struct {
	Port  int
	Guard GuardOptions
	Store handler.Pinger
	Game  game.Service
	Hub   *sse.Hub // nil disables the live feed
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and the HTTP server.
// An empty API key leaves the API open, which suits a single local player.
func NewServer(opts Options) *Server {
	guard := NewGuard(opts.Guard)
	hub := opts.Hub

	r := chi.NewRouter()
	r.Use(secureHeaders)
	r.Use(guard.Authenticate)
	r.Use(guard.Throttle)
	r.Use(limitBody(maxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(requestLogger)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Store))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	h := handler.NewGameHandler(opts.Game)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", h.HandleGetState)
		r.Get("/summary", h.HandleGetSummary)
		r.Post("/reset", h.HandleReset)

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", h.HandleListQuests)
			r.Post("/", h.HandleAddQuest)
			r.Route("/{"+handler.ParamIndex+"}", func(r chi.Router) {
				r.Get("/", h.HandleGetQuestProgress)
				r.Post("/start", h.HandleStartQuest)
				r.Post("/cancel", h.HandleCancelQuest)
				r.Post("/complete", h.HandleCompleteQuest)
			})
		})

		r.Route("/daily", func(r chi.Router) {
			r.Get("/", h.HandleGetDaily)
			r.Post("/complete", h.HandleCompleteDaily)
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", h.HandleGetShop)
			r.Post("/buy", h.HandleBuyItem)
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.HandleGetHistory)
			r.Delete("/", h.HandleClearHistory)
		})

		var clients handler.ClientCounter
		if hub != nil {
			clients = hub
			r.Get("/events", sse.Handler(hub))
		}
		r.Get("/stats", handler.NewStatsHandler(nil, clients).HandleGetStats)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets streaming handlers push through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// quiet paths are probed often enough to drown the request log
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{redacted}
			continue
		}
		out[k] = v
	}
	return out
}

// requestLogger tags each request with an id and logs it on the way in and out
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		ctx = logger.WithAttrs(ctx, "method", r.Method, "path", r.URL.Path)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info("Request started",
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug("Request headers", "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		log.Info("Request completed",
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
