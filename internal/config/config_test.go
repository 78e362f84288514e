package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg := LoadFile(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "tradenet-api", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 15, cfg.App.PageSize)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpiryHours)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
}

func TestLoadFile_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nDB_DRIVER=sqlite\nDB_SQLITE_PATH=/tmp/x.db\nJWT_EXPIRY_HOURS=2\nSUPERUSER_EMAIL=admin@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := LoadFile(path)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Database.SQLitePath)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, "admin@example.com", cfg.Superuser.Email)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", Name: "tradenet", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=tradenet port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
