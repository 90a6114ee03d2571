package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// MinWatchInterval is the floor for watch polling. Anything faster
// hammers the scrape service for no benefit.
const MinWatchInterval = 5 * time.Second

type Config struct {
	// Scrape service
	Service struct {
		BaseURL        string `toml:"base_url"`        // where the scrape service listens
		APIVersion     string `toml:"api_version"`     // "v2" (typed) or "v1" (legacy arrays)
		TimeoutSeconds int    `toml:"timeout_seconds"` // whole round trip; -1 disables the deadline
		DownloadDir    string `toml:"download_dir"`    // where exports are saved
	} `toml:"service"`

	// Terminal UI
	UI struct {
		Theme string `toml:"theme"` // "dark" or "light"
	} `toml:"ui"`

	// Watch mode
	Watch struct {
		IntervalSeconds int `toml:"interval_seconds"`
	} `toml:"watch"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Service.BaseURL = "http://localhost:5000"
	cfg.Service.APIVersion = "v2"
	cfg.Service.TimeoutSeconds = 120
	cfg.Service.DownloadDir = "."
	cfg.UI.Theme = "dark"
	cfg.Watch.IntervalSeconds = 30
	return cfg
}

// Timeout converts timeout_seconds into the HTTP client deadline.
// A negative value means no deadline at all.
func (c *Config) Timeout() time.Duration {
	if c.Service.TimeoutSeconds < 0 {
		return 0
	}
	return time.Duration(c.Service.TimeoutSeconds) * time.Second
}

// WatchInterval returns the polling interval, never below the floor.
func (c *Config) WatchInterval() time.Duration {
	interval := time.Duration(c.Watch.IntervalSeconds) * time.Second
	if interval < MinWatchInterval {
		return MinWatchInterval
	}
	return interval
}

// DarkMode reports whether the UI should render its dark palette.
// Anything that is not explicitly "light" counts as dark.
func (c *Config) DarkMode() bool {
	return c.UI.Theme != "light"
}

// ToggleTheme flips between the two palettes.
func (c *Config) ToggleTheme() {
	if c.DarkMode() {
		c.UI.Theme = "light"
	} else {
		c.UI.Theme = "dark"
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", "web-scraper")
	return filepath.Join(configDir, "config.toml"), nil
}

// applyEnv lets environment variables override the file (useful for
// Docker and CI).
func applyEnv(cfg *Config) {
	if baseURL := os.Getenv("SCRAPER_SERVER_URL"); baseURL != "" {
		cfg.Service.BaseURL = baseURL
	}
	if version := os.Getenv("SCRAPER_API_VERSION"); version != "" {
		cfg.Service.APIVersion = version
	}
}

// Load reads configuration from ~/.config/web-scraper/config.toml
// Creates the file with defaults if it doesn't exist
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		applyEnv(cfg)
		return cfg, nil
	}

	// Read existing config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge with defaults for any missing values
	defaultCfg := DefaultConfig()
	if cfg.Service.BaseURL == "" {
		cfg.Service.BaseURL = defaultCfg.Service.BaseURL
	}
	if cfg.Service.APIVersion == "" {
		cfg.Service.APIVersion = defaultCfg.Service.APIVersion
	}
	if cfg.Service.TimeoutSeconds == 0 {
		cfg.Service.TimeoutSeconds = defaultCfg.Service.TimeoutSeconds
	}
	if cfg.Service.DownloadDir == "" {
		cfg.Service.DownloadDir = defaultCfg.Service.DownloadDir
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaultCfg.UI.Theme
	}
	if cfg.Watch.IntervalSeconds == 0 {
		cfg.Watch.IntervalSeconds = defaultCfg.Watch.IntervalSeconds
	}

	applyEnv(&cfg)

	return &cfg, nil
}

// Save writes the configuration to the config file
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to TOML
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
