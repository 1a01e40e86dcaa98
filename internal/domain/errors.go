package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgDurationTooLong = "duration too long"

	// Quest errors
	ErrMsgQuestNotFound      = "quest not found"
	ErrMsgQuestAlreadyActive = "a quest is already active"
	ErrMsgQuestNotStarted    = "quest timer not started"
	ErrMsgQuestTooEarly      = "quest validated too early"

	// Daily quest errors
	ErrMsgDailyLimitReached      = "daily quest limit reached"
	ErrMsgDailyAlreadyCompleted  = "daily quest already completed today"
	ErrMsgDailyQuestNotFound     = "daily quest not in today's selection"
	ErrMsgDailyPoolTooSmall      = "daily quest pool has fewer entries than required"
	ErrMsgDailyPoolDuplicateName = "daily quest pool contains a duplicate name"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgItemLocked        = "item is locked"

	// Storage errors
	ErrMsgKeyNotFound = "key not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrDurationTooLong = errors.New(ErrMsgDurationTooLong)

	ErrQuestNotFound      = errors.New(ErrMsgQuestNotFound)
	ErrQuestAlreadyActive = errors.New(ErrMsgQuestAlreadyActive)
	ErrQuestNotStarted    = errors.New(ErrMsgQuestNotStarted)
	ErrQuestTooEarly      = errors.New(ErrMsgQuestTooEarly)

	ErrDailyLimitReached     = errors.New(ErrMsgDailyLimitReached)
	ErrDailyAlreadyCompleted = errors.New(ErrMsgDailyAlreadyCompleted)
	ErrDailyQuestNotFound    = errors.New(ErrMsgDailyQuestNotFound)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrItemLocked        = errors.New(ErrMsgItemLocked)

	ErrKeyNotFound = errors.New(ErrMsgKeyNotFound)
)
