package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Run from an empty directory so no stray config.toml is picked up
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "catalog-admin", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
		assert.Equal(t, 20, cfg.API.PageSize)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stderr", cfg.Log.Output)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, 60*time.Second, cfg.Telemetry.ExportInterval)
		assert.Equal(t, 5.0, cfg.Import.RatePerSecond)
		assert.False(t, cfg.StorageEnabled())
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads values from environment variables with CATALOG_ADMIN prefix", func(t *testing.T) {
		t.Setenv("CATALOG_ADMIN_API_BASE_URL", "https://shop.example.com/api")
		t.Setenv("CATALOG_ADMIN_API_PAGE_SIZE", "50")
		t.Setenv("CATALOG_ADMIN_API_TIMEOUT", "5s")
		t.Setenv("CATALOG_ADMIN_LOG_LEVEL", "debug")
		t.Setenv("CATALOG_ADMIN_STORAGE_BUCKET", "media")
		t.Setenv("CATALOG_ADMIN_STORAGE_ACCESS_KEY", "key")
		t.Setenv("CATALOG_ADMIN_STORAGE_SECRET_KEY", "secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "https://shop.example.com/api", cfg.API.BaseURL)
		assert.Equal(t, 50, cfg.API.PageSize)
		assert.Equal(t, 5*time.Second, cfg.API.Timeout)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.StorageEnabled())
	})

	t.Run("rejects page size out of range", func(t *testing.T) {
		t.Setenv("CATALOG_ADMIN_API_PAGE_SIZE", "500")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api.page_size")
	})

	t.Run("rejects non-http base url", func(t *testing.T) {
		t.Setenv("CATALOG_ADMIN_API_BASE_URL", "ftp://example.com")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http or https")
	})

	t.Run("production requires https", func(t *testing.T) {
		t.Setenv("CATALOG_ADMIN_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "https in production")
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads an explicit toml file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "admin.toml")
		content := `
[api]
base_url = "http://api.internal:8080/api"
page_size = 10

[api.headers]
x-store = "north"

[import]
rate_per_second = 2.5
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "http://api.internal:8080/api", cfg.API.BaseURL)
		assert.Equal(t, 10, cfg.API.PageSize)
		assert.Equal(t, "north", cfg.API.Headers["x-store"])
		assert.Equal(t, 2.5, cfg.Import.RatePerSecond)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}
