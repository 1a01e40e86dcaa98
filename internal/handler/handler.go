package handler

import (
	"net/http"

	"github.com/osse101/QuestCraft_Go/internal/game"
)

// GameHandler exposes the game service over HTTP
type GameHandler struct {
	svc game.Service
}

// NewGameHandler creates the handler set for the game routes
func NewGameHandler(svc game.Service) *GameHandler {
	return &GameHandler{svc: svc}
}

// HandleGetState returns the whole persisted state
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.State(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionGetState, err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// HandleGetSummary returns points, completed count and the next tier
func (h *GameHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionGetSummary, err)
		return
	}
	respondJSON(w, http.StatusOK, sum)
}

// HandleReset wipes every persisted key
func (h *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		respondServiceError(w, r, ActionReset, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStateReset})
}
