package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/QuestCraft_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

const (
	initialBufferSize = 512
	maxPooledBuffer   = 64 << 10 // full state dumps above this are not recycled
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, so only log
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps err to a status and user message and logs server-side failures
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := loggerFor(r)
	if status >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err)
	} else {
		log.Info(action+" rejected", "reason", err.Error())
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgInvalidInputError     = "Invalid quest. Check the name, difficulty (1-5) and duration."
	ErrMsgDurationTooLongError  = "Duration must be at most 4 hours"
	ErrMsgQuestNotFoundError    = "Quest not found"
	ErrMsgQuestActiveError      = "Another quest is already running"
	ErrMsgQuestNotStartedError  = "Start the quest timer first"
	ErrMsgQuestTooEarlyError    = "Too early! Wait until 90% of the time has elapsed"
	ErrMsgDailyLimitError       = "All 3 daily quests are done for today"
	ErrMsgDailyDoneError        = "That daily quest is already checked today"
	ErrMsgDailyNotFoundError    = "That quest is not in today's selection"
	ErrMsgNotEnoughPointsError  = "Not enough points"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgItemLockedError       = "Item is locked. Complete more quests to unlock its tier"
	ErrMsgStorageUnavailableErr = "Storage is temporarily unavailable. Please try again."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDurationTooLong):
		return http.StatusBadRequest, ErrMsgDurationTooLongError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrQuestAlreadyActive):
		return http.StatusConflict, ErrMsgQuestActiveError
	case errors.Is(err, domain.ErrQuestNotStarted):
		return http.StatusConflict, ErrMsgQuestNotStartedError
	case errors.Is(err, domain.ErrQuestTooEarly):
		return http.StatusConflict, ErrMsgQuestTooEarlyError
	case errors.Is(err, domain.ErrDailyLimitReached):
		return http.StatusConflict, ErrMsgDailyLimitError
	case errors.Is(err, domain.ErrDailyAlreadyCompleted):
		return http.StatusConflict, ErrMsgDailyDoneError
	case errors.Is(err, domain.ErrDailyQuestNotFound):
		return http.StatusNotFound, ErrMsgDailyNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughPointsError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrItemLocked):
		return http.StatusForbidden, ErrMsgItemLockedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
