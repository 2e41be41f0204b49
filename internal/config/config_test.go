package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-planner/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "KANSO_STORE", "REDIS_HOST", "REDIS_CACHE", "KANSO_SEED", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg := config.FromEnv()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, config.StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, "kv_entries", cfg.Store.Table)
	assert.True(t, cfg.Planner.Seed)
	assert.Equal(t, 100, cfg.RateLimit.Limit)
	assert.False(t, cfg.Redis.Enabled(cfg.Store.Driver))
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("KANSO_STORE", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "n")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_CACHE", "true")
	t.Setenv("REDIS_CACHE_TTL", "5m")
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("KANSO_SEED", "false")

	cfg := config.FromEnv()

	assert.Equal(t, config.StorePostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", cfg.Store.Postgres.DSN())
	assert.True(t, cfg.Redis.Enabled(cfg.Store.Driver))
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 100, cfg.RateLimit.Limit, "invalid numbers fall back to the default")
	assert.False(t, cfg.Planner.Seed)
}

func TestDotEnvFile(t *testing.T) {
	t.Setenv("KANSO_SQLITE_PATH", "")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KANSO_SQLITE_PATH=/tmp/planner.db\n"), 0o600))

	require.NoError(t, godotenv.Overload(path))

	assert.Equal(t, "/tmp/planner.db", config.FromEnv().Store.SQLitePath)
}

func TestPlannerConfig_Location(t *testing.T) {
	loc, err := config.PlannerConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = config.PlannerConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = config.PlannerConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
