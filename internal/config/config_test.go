package config

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := Load(testLogger())
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, "handled.db", cfg.IdempotencePath)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 12000, cfg.Dashboard.Port)
	assert.Equal(t, "http://localhost:12000", cfg.Dashboard.URL)
}

func TestLoadRequiresToken(t *testing.T) {
	// t.Setenv registers the restore; unsetting after leaves the var
	// absent for the duration of the test.
	t.Setenv("TELEGRAM_TOKEN", "placeholder")
	os.Unsetenv("TELEGRAM_TOKEN")

	_, err := Load(testLogger())
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASS", "s3cret")
	t.Setenv("DASHBOARD_PORT", "8080")

	cfg, err := Load(testLogger())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "s3cret", cfg.DB.Password)
	assert.Equal(t, 8080, cfg.Dashboard.Port)
	assert.Contains(t, cfg.DB.DSN(), "host=db.internal")
}

func TestDSN(t *testing.T) {
	db := DBConfig{Host: "h", Port: 5433, Name: "n", User: "u", Password: "p"}
	assert.Equal(t, "host=h port=5433 dbname=n user=u password=p sslmode=disable", db.DSN())
}
