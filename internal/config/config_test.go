package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("MIGRATIONS_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
	assert.Contains(t, cfg.DatabaseDSN, "dbname=money_transfer_db")
	assert.Contains(t, cfg.DatabaseDSN, "sslmode=disable")
}

func TestNormalizeConnectionString(t *testing.T) {
	dsn := normalizeConnectionString("Host=db;Port=5433;Database=transfers;Username=app;Password=secret;Timeout=10")

	assert.Equal(t, "host=db port=5433 dbname=transfers user=app password=secret connect_timeout=10 sslmode=disable", dsn)
}

func TestNormalizeConnectionStringPassthrough(t *testing.T) {
	dsn := normalizeConnectionString("host=db port=5432 dbname=transfers user=app sslmode=require")

	assert.Equal(t, "host=db port=5432 dbname=transfers user=app sslmode=require", dsn)
}
