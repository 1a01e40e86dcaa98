package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv rejects a .env written for another schema version.
// An unset ENV_SCHEMA_VERSION is accepted since every key has a default.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatchFmt, ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// Warnings returns non-fatal issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StorageDriver == DriverPostgres && c.DBPassword == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.StorageDriver == DriverMemory {
		warnings = append(warnings, "STORAGE_DRIVER=memory - progress is lost when the process exits")
	}
	if c.APIKey == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.RelayEnabled() && c.RelayKey == "" {
		warnings = append(warnings, "RELAY_KEY is empty - the game server will receive unauthenticated commands")
	}

	return warnings
}
