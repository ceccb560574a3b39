package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_PORT", "8081")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("DB_NAME", "places")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GEOCODE_CACHE_TTL", "60")
	t.Setenv("AUTH_ENFORCE_OWNERSHIP", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.GetServerAddr())
	assert.Equal(t, "places", cfg.Database.DBName)
	assert.Equal(t, 60*time.Second, cfg.Cache.GeocodeCacheTTL)
	assert.False(t, cfg.Auth.EnforceOwnership)
	assert.Equal(t, "https://api.mapbox.com", cfg.Mapbox.BaseURL)
	assert.Equal(t, defaultPlaceImage, cfg.Place.DefaultImage)
	assert.Equal(t, "stream:places:events", cfg.Events.Stream)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
	assert.Contains(t, cfg.Database.DSN(), "host=db port=5432")
}

func TestLoad_FromDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := "DB_NAME=places_dev\nJWT_SECRET=dev-secret\nLOG_LEVEL=debug\nEVENTS_ENABLED=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "places_dev", cfg.Database.DBName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Events.Enabled)
	assert.True(t, cfg.Auth.EnforceOwnership)
}

func TestLoad_MissingSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_NAME", "places")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
