package config_test

import (
	"discovery/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
  allowedOrigins: ["https://denver.example"]
proximity:
  cacheTTL: 30s
suggestions:
  count: 12
`), 0o600))

	t.Setenv("CURATOR_ENABLED", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://denver.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 30*time.Second, cfg.Proximity.CacheTTL)
	require.Equal(t, 12, cfg.Suggestions.Count)
	require.True(t, cfg.Curator.Enabled)

	// untouched values come from env-default
	require.InDelta(t, 39.7392, cfg.Proximity.CenterLat, 1e-9)
	require.InDelta(t, 0.30, cfg.Feed.AffinityWeight, 1e-9)
	require.Equal(t, 3, cfg.Suggestions.MaxPerCategory)
	require.Equal(t, 5*time.Minute, cfg.Suggestions.RefreshPeriod)
	require.Equal(t, "discovery", cfg.Database.DatabaseName)
	require.Equal(t, 600, cfg.HTTP.RateLimit)
}

func TestLoad_RepositoryConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "config.yml"))
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.AllowedOrigins)
	require.False(t, cfg.Curator.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
