package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DriverSQLite, cfg.StorageDriver)
		assert.Equal(t, DefaultSQLitePath, cfg.SQLitePath)
		assert.Equal(t, "minecraft", cfg.RelayNamespace)
		assert.Equal(t, 5*time.Second, cfg.RelayTimeout)
		assert.False(t, cfg.RelayEnabled())
		assert.Empty(t, cfg.DailyPoolPath)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
		assert.Equal(t, 5*time.Minute, cfg.RateWindow)
	})

	t.Run("values from environment", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("STORAGE_DRIVER", "Postgres")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("CACHE_SIZE", "128")
		t.Setenv("CACHE_TTL", "1m")
		t.Setenv("RELAY_URL", "http://mc.local:4567/command")
		t.Setenv("RELAY_KEY", "secret")
		t.Setenv("RELAY_PLAYER", "Steve")
		t.Setenv("RELAY_TIMEOUT", "2s")
		t.Setenv("TIMEZONE", "Europe/Paris")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")
		t.Setenv("RATE_LIMIT", "50")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, DriverPostgres, cfg.StorageDriver)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, 128, cfg.CacheSize)
		assert.Equal(t, time.Minute, cfg.CacheTTL)
		assert.True(t, cfg.RelayEnabled())
		assert.Equal(t, 2*time.Second, cfg.RelayTimeout)
		assert.Equal(t, "Europe/Paris", cfg.Location().String())
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, 50, cfg.RateLimit)

		rc := cfg.RelayConfig()
		assert.Equal(t, "Steve", rc.Player)
		assert.Equal(t, "secret", rc.Key)
	})

	t.Run("invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:          8080,
			StorageDriver: DriverSQLite,
			SQLitePath:    "data.db",
			Timezone:      "UTC",
			RelayTimeout:  time.Second,
			RateLimit:     DefaultRateLimit,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port out of range", func(c *Config) { c.Port = 70000 }, "PORT must be between"},
		{"negative port", func(c *Config) { c.Port = -1 }, "PORT must be between"},
		{"unknown driver", func(c *Config) { c.StorageDriver = "mongo" }, "unknown STORAGE_DRIVER"},
		{"sqlite without path", func(c *Config) { c.SQLitePath = "" }, ErrMsgSQLitePathRequired},
		{"memory needs no path", func(c *Config) { c.StorageDriver = DriverMemory; c.SQLitePath = "" }, ""},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "invalid TIMEZONE"},
		{"zero rate limit", func(c *Config) { c.RateLimit = 0 }, "RATE_LIMIT"},
		{"negative cache", func(c *Config) { c.CacheSize = -1 }, "CACHE_SIZE"},
		{"relay without player", func(c *Config) { c.RelayURL = "http://x" }, ErrMsgRelayPlayerMissing},
		{"relay with zero timeout", func(c *Config) {
			c.RelayURL = "http://x"
			c.RelayPlayer = "Alex"
			c.RelayTimeout = 0
		}, "RELAY_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "questcraft",
		DBPassword: "pw",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "quests",
	}
	assert.Equal(t, "postgres://questcraft:pw@db:5433/quests?sslmode=disable", cfg.GetDBConnString())
}

// clearEnvVars unsets every key Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "TRUSTED_PROXIES", "RATE_LIMIT", "RATE_WINDOW", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR", "ENVIRONMENT",
		"STORAGE_DRIVER", "SQLITE_PATH",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "DB_CONNECT_ATTEMPTS",
		"CACHE_SIZE", "CACHE_TTL",
		"RELAY_URL", "RELAY_KEY", "RELAY_PLAYER", "RELAY_NAMESPACE", "RELAY_TIMEOUT",
		"DAILY_POOL_PATH", "TIMEZONE", "ENV_SCHEMA_VERSION",
	}

	for _, key := range envVars {
		setOrUnset(t, key, nil)
	}
}

// setOrUnset sets key to *value, or unsets it when value is nil
func setOrUnset(t *testing.T, key string, value *string) {
	t.Helper()
	if value != nil {
		t.Setenv(key, *value)
		return
	}
	// t.Setenv registers the restore; the unset follows
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
