package storage

// Storage keys of the persisted blobs
const (
	KeyGameData        = "gameData"
	KeyDailyQuests     = "dailyQuests"
	KeyDailyQuestsDate = "dailyQuestsDate"
)

// Supported drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Formatted error messages
const (
	ErrMsgGetKeyFmt        = "failed to read %s: %w"
	ErrMsgPutKeyFmt        = "failed to write %s: %w"
	ErrMsgDeleteKeysFmt    = "failed to delete %v: %w"
	ErrMsgMarshalFmt       = "failed to encode %s: %w"
	ErrMsgOpenSQLiteFmt    = "open sqlite: %w"
	ErrMsgPingSQLiteFmt    = "ping sqlite: %w"
	ErrMsgUnknownDriverFmt = "unknown storage driver %q"
)

// Log messages
const (
	LogMsgCorruptBlob     = "Stored blob is unreadable, falling back to defaults"
	LogMsgNoSavedState    = "No saved state found, starting fresh"
	LogMsgStateLoaded     = "Loaded saved state"
	LogMsgDailyIncomplete = "Stored daily selection is incomplete, a new one will be drawn"
)
