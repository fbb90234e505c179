// Package config resolves runtime configuration from the environment, with
// defaults that keep all state files in the working directory and the stock
// admin credentials in place.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the file locations and the login-gate settings.
type Config struct {
	DataFile    string
	HistoryFile string
	AuditFile   string

	AdminUser string
	// AdminPassword is hashed at startup unless AdminPasswordHash is set.
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string
}

// Load reads an optional .env file, then resolves each setting from the
// environment with its default.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataFile:          getEnv("WORKSHOP_DATA_FILE", "workshop_data.db"),
		HistoryFile:       getEnv("WORKSHOP_HISTORY_FILE", "workshop_history.db"),
		AuditFile:         getEnv("WORKSHOP_AUDIT_FILE", "service_history.txt"),
		AdminUser:         getEnv("WORKSHOP_ADMIN_USER", "admin"),
		AdminPassword:     getEnv("WORKSHOP_ADMIN_PASSWORD", "1234"),
		AdminPasswordHash: getEnv("WORKSHOP_ADMIN_PASSWORD_HASH", ""),
		SessionSecret:     getEnv("WORKSHOP_SESSION_SECRET", "workshop-session-secret"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
