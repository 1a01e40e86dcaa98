package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/QuestCraft_Go/internal/database"
	"github.com/osse101/QuestCraft_Go/internal/relay"
)

// Config holds the application configuration
type Config struct {
	Environment string
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	APIKey      string // empty disables authentication

	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration

	StorageDriver string
	SQLitePath    string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	DBConnectAttempts int

	CacheSize int
	CacheTTL  time.Duration

	RelayURL       string
	RelayKey       string
	RelayPlayer    string
	RelayNamespace string
	RelayTimeout   time.Duration

	DailyPoolPath string // empty uses the embedded pool
	Timezone      string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:            getEnv("LOG_DIR", DefaultLogDir),
		APIKey:            getEnv("API_KEY", ""),
		TrustedProxies:    getEnvAsList("TRUSTED_PROXIES"),
		RateLimit:         getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		RateWindow:        getEnvAsDuration("RATE_WINDOW", 5*time.Minute),
		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", DefaultStorageDriver)),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		DBConnectAttempts: getEnvAsInt("DB_CONNECT_ATTEMPTS", DefaultDBConnectAttempts),
		CacheSize:         getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		RelayURL:          getEnv("RELAY_URL", ""),
		RelayKey:          getEnv("RELAY_KEY", ""),
		RelayPlayer:       getEnv("RELAY_PLAYER", ""),
		RelayNamespace:    getEnv("RELAY_NAMESPACE", relay.DefaultNamespace),
		RelayTimeout:      getEnvAsDuration("RELAY_TIMEOUT", relay.DefaultTimeout),
		DailyPoolPath:     getEnv("DAILY_POOL_PATH", ""),
		Timezone:          getEnv("TIMEZONE", DefaultTimezone),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPortFmt, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the combination of values
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrMsgPortRangeFmt, c.Port))
	}

	switch c.StorageDriver {
	case DriverMemory, DriverPostgres:
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New(ErrMsgSQLitePathRequired))
		}
	default:
		errs = append(errs, fmt.Errorf(ErrMsgUnknownDriverFmt, c.StorageDriver))
	}

	if c.RateLimit < 1 {
		errs = append(errs, fmt.Errorf(ErrMsgRateLimitFmt, c.RateLimit))
	}

	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf(ErrMsgCacheSizeFmt, c.CacheSize))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf(ErrMsgTimezoneFmt, c.Timezone, err))
	}

	if c.RelayEnabled() {
		if c.RelayPlayer == "" {
			errs = append(errs, errors.New(ErrMsgRelayPlayerMissing))
		}
		if c.RelayTimeout <= 0 {
			errs = append(errs, fmt.Errorf(ErrMsgRelayTimeoutFmt, c.RelayTimeout))
		}
	}

	return errors.Join(errs...)
}

// Location returns the timezone used for the daily quest calendar day
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// RelayEnabled reports whether purchased items are forwarded to the game server
func (c *Config) RelayEnabled() bool {
	return c.RelayURL != ""
}

// RelayConfig returns the relay client settings
func (c *Config) RelayConfig() relay.Config {
	return relay.Config{
		URL:       c.RelayURL,
		Key:       c.RelayKey,
		Player:    c.RelayPlayer,
		Namespace: c.RelayNamespace,
	}
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration such as "90s" or "1h30m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
