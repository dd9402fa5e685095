package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_PORT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=hygiene sslmode=disable", cfg.Database.DSN())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/h.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "/tmp/h.db?_foreign_keys=on&_busy_timeout=5000", cfg.Database.SQLiteDSN())
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestSlogLevel_Fallback(t *testing.T) {
	lc := LogConfig{Level: "loud"}
	assert.Equal(t, slog.LevelInfo, lc.SlogLevel())
}
