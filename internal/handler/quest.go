package handler

import (
	"net/http"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

// AddQuestRequest is the body of POST /quests.
// Durations above the cap are left to the service so the caller gets the dedicated error.
type AddQuestRequest struct {
	Name            string `json:"name" validate:"required,notblank,max=100"`
	Difficulty      int    `json:"difficulty" validate:"required,min=1,max=5"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,min=1"`
}

// HandleListQuests returns every quest with its projected progress
func (h *GameHandler) HandleListQuests(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Quests(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionListQuests, err)
		return
	}
	if list == nil {
		list = []domain.QuestProgress{}
	}
	respondJSON(w, http.StatusOK, list)
}

// HandleAddQuest creates an unstarted quest
func (h *GameHandler) HandleAddQuest(w http.ResponseWriter, r *http.Request) {
	var req AddQuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionAddQuest); err != nil {
		return
	}

	q, err := h.svc.AddQuest(r.Context(), req.Name, req.Difficulty, req.DurationMinutes)
	if err != nil {
		respondServiceError(w, r, ActionAddQuest, err)
		return
	}
	respondJSON(w, http.StatusCreated, q)
}

// HandleGetQuestProgress returns the progress of one quest
func (h *GameHandler) HandleGetQuestProgress(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}

	p, err := h.svc.QuestProgress(r.Context(), idx)
	if err != nil {
		respondServiceError(w, r, ActionQuestProgress, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleStartQuest starts the quest timer
func (h *GameHandler) HandleStartQuest(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}

	q, err := h.svc.StartQuest(r.Context(), idx)
	if err != nil {
		respondServiceError(w, r, ActionStartQuest, err)
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// HandleCancelQuest removes a quest without reward
func (h *GameHandler) HandleCancelQuest(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}

	q, err := h.svc.CancelQuest(r.Context(), idx)
	if err != nil {
		respondServiceError(w, r, ActionCancelQuest, err)
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// HandleCompleteQuest validates a running quest
func (h *GameHandler) HandleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	idx, ok := pathIndex(w, r)
	if !ok {
		return
	}

	out, err := h.svc.CompleteQuest(r.Context(), idx)
	if err != nil {
		respondServiceError(w, r, ActionCompleteQuest, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}
