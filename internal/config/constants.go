package config

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultEnvironment       = "dev"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultStorageDriver     = DriverSQLite
	DefaultSQLitePath        = "data/questcraft.db"
	DefaultDBName            = "questcraft"
	DefaultDBMaxConns        = 20
	DefaultDBConnectAttempts = 5
	DefaultCacheSize         = 64
	DefaultRateLimit         = 1000
	DefaultTimezone          = "Local"
)

// Error messages
const (
	ErrMsgInvalidPortFmt     = "invalid PORT value: %w"
	ErrMsgPortRangeFmt       = "PORT must be between 1 and 65535, got %d"
	ErrMsgUnknownDriverFmt   = "unknown STORAGE_DRIVER %q (want memory, sqlite or postgres)"
	ErrMsgSQLitePathRequired = "SQLITE_PATH must be set when STORAGE_DRIVER=sqlite"
	ErrMsgTimezoneFmt        = "invalid TIMEZONE %q: %w"
	ErrMsgRelayPlayerMissing = "RELAY_PLAYER must be set when RELAY_URL is configured"
	ErrMsgRelayTimeoutFmt    = "RELAY_TIMEOUT must be positive, got %s"
	ErrMsgRateLimitFmt       = "RATE_LIMIT must be at least 1, got %d"
	ErrMsgCacheSizeFmt       = "CACHE_SIZE must not be negative, got %d"
	ErrMsgSchemaMismatchFmt  = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
)
