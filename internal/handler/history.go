package handler

import (
	"net/http"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

// HandleGetHistory returns the log, oldest first
func (h *GameHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.History(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionGetHistory, err)
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

// HandleClearHistory empties the log without touching points
func (h *GameHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearHistory(r.Context()); err != nil {
		respondServiceError(w, r, ActionClearHistory, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHistoryCleared})
}
