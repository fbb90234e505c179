package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "workshop_data.db", cfg.DataFile)
	assert.Equal(t, "workshop_history.db", cfg.HistoryFile)
	assert.Equal(t, "service_history.txt", cfg.AuditFile)
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.Equal(t, "1234", cfg.AdminPassword)
	assert.Empty(t, cfg.AdminPasswordHash)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WORKSHOP_DATA_FILE", "/tmp/other.db")
	t.Setenv("WORKSHOP_ADMIN_USER", "boss")

	cfg := Load()
	assert.Equal(t, "/tmp/other.db", cfg.DataFile)
	assert.Equal(t, "boss", cfg.AdminUser)
	assert.Equal(t, "workshop_history.db", cfg.HistoryFile)
}
