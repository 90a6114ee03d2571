package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SCRAPER_SERVER_URL", "")
	t.Setenv("SCRAPER_API_VERSION", "")
	return home
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.Service.BaseURL)
	assert.Equal(t, "v2", cfg.Service.APIVersion)
	assert.Equal(t, 120, cfg.Service.TimeoutSeconds)
	assert.True(t, cfg.DarkMode())
	assert.Equal(t, 30*time.Second, cfg.WatchInterval())

	_, err = os.Stat(filepath.Join(home, ".config", "web-scraper", "config.toml"))
	assert.NoError(t, err)
}

func TestThemeTogglePersists(t *testing.T) {
	isolateHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.DarkMode())

	cfg.ToggleTheme()
	require.NoError(t, Save(cfg))

	// A fresh load sees the flipped theme, same as reopening the UI.
	reloaded, err := Load()
	require.NoError(t, err)
	assert.False(t, reloaded.DarkMode())
	assert.Equal(t, "light", reloaded.UI.Theme)
}

func TestLoadMergesMissingValues(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".config", "web-scraper")
	require.NoError(t, os.MkdirAll(dir, 0755))
	partial := "[service]\nbase_url = \"http://scraper.internal:5000\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(partial), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://scraper.internal:5000", cfg.Service.BaseURL)
	assert.Equal(t, "v2", cfg.Service.APIVersion)
	assert.Equal(t, 120, cfg.Service.TimeoutSeconds)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestEnvironmentOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("SCRAPER_SERVER_URL", "http://10.0.0.5:5000")
	t.Setenv("SCRAPER_API_VERSION", "v1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:5000", cfg.Service.BaseURL)
	assert.Equal(t, "v1", cfg.Service.APIVersion)
}

func TestTimeoutSemantics(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 120*time.Second, cfg.Timeout())

	cfg.Service.TimeoutSeconds = -1
	assert.Equal(t, time.Duration(0), cfg.Timeout())

	cfg.Service.TimeoutSeconds = 15
	assert.Equal(t, 15*time.Second, cfg.Timeout())
}

func TestWatchIntervalClampsToFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Watch.IntervalSeconds = 1
	assert.Equal(t, MinWatchInterval, cfg.WatchInterval())

	cfg.Watch.IntervalSeconds = 45
	assert.Equal(t, 45*time.Second, cfg.WatchInterval())
}
