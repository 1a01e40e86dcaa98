package relay

import "time"

// Default configuration values
const (
	DefaultNamespace = "minecraft"
	DefaultTimeout   = 5 * time.Second

	// GiveCommandFmt is player, namespace, lowercase item id
	GiveCommandFmt = "give %s %s:%s 1"
)

// Dispatch outcomes reported to the recorder
const (
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeDropped = "dropped"
)

// Error messages
const (
	ErrMsgEncodeRequestFmt = "failed to encode relay request: %w"
	ErrMsgBuildRequestFmt  = "failed to build relay request: %w"
	ErrMsgSendFmt          = "relay request failed: %w"
	ErrMsgStatusFmt        = "relay responded with status %d"
	ErrMsgMissingURL       = "relay URL is not configured"
	ErrMsgMissingPlayer    = "relay player is not configured"
)

// Log messages
const (
	LogMsgSubscribed      = "Relay subscriber registered"
	LogMsgDispatching     = "Dispatching give command to relay"
	LogMsgDispatched      = "Relay accepted give command"
	LogMsgDispatchFailed  = "Relay dispatch failed"
	LogMsgInvalidPayload  = "Invalid item purchased event payload"
	LogMsgDroppedShutdown = "Relay dispatch dropped during shutdown"
	LogMsgShutdownTimeout = "Relay shutdown timed out with dispatches in flight"
)
