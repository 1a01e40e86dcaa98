package handler

import "net/http"

// CompleteDailyRequest is the body of POST /daily/complete
type CompleteDailyRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

// HandleGetDaily returns today's three quests, drawing them on a new day
func (h *GameHandler) HandleGetDaily(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.DailyQuests(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionGetDaily, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleCompleteDaily checks one of today's quests
func (h *GameHandler) HandleCompleteDaily(w http.ResponseWriter, r *http.Request) {
	var req CompleteDailyRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionCompleteDaily); err != nil {
		return
	}

	out, err := h.svc.CompleteDaily(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, ActionCompleteDaily, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}
