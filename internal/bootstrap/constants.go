package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit triggers cleanup once this many log files exist
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting QuestCraft"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgCreateLogsDirFmt    = "failed to create logs directory: %w"
	ErrMsgOpenLogFileFmt      = "failed to open log file: %w"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStoreOpened        = "State store opened"
	LogMsgCacheEnabled       = "Read-through cache enabled"
	ErrMsgCreateDataDirFmt   = "failed to create data directory: %w"
	ErrMsgOpenSQLiteFmt      = "failed to open sqlite store: %w"
	ErrMsgOpenPostgresFmt    = "failed to connect to postgres: %w"
	ErrMsgMigratePostgresFmt = "failed to migrate postgres: %w"
	ErrMsgUnknownDriverFmt   = "unknown storage driver %q"
)

// =============================================================================
// Application Wiring
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgLiveFeedStarted            = "Live event feed started"
	LogMsgRelayEnabled               = "Game server relay enabled"
	LogMsgRelayDisabled              = "Game server relay disabled (RELAY_URL not set)"
	ErrMsgLoadDailyPoolFmt           = "failed to load daily quest pool: %w"
	ErrMsgLoadCatalogFmt             = "failed to load shop catalog: %w"
	ErrMsgInvalidRelayFmt            = "invalid relay configuration: %w"
	ErrMsgCreateGameServiceFmt       = "failed to create game service: %w"
)

// RelayHTTPTimeout bounds the whole relay HTTP exchange, on top of the per-dispatch context
const RelayHTTPTimeout = 10 * time.Second

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownRelay    = "Waiting for pending relay dispatches..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgRelayShutdownFailed  = "Relay shutdown failed"
	LogMsgStoreCloseFailed     = "Failed to close state store"
)
