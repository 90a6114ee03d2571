package cli

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/vvraju56/web-scraper/pkg/config"
	"github.com/vvraju56/web-scraper/pkg/models"
)

// ShowConfig displays the current configuration
func (a *App) ShowConfig() {
	data, err := toml.Marshal(a.cfg)
	if err != nil {
		fmt.Printf("Error marshaling config: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// SetConfig sets a configuration value
// Format: section.key=value (e.g., "service.base_url=http://localhost:5000")
func (a *App) SetConfig(setStr string) error {
	parts := strings.SplitN(setStr, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format: expected 'section.key=value'")
	}

	keyPath := strings.Split(parts[0], ".")
	value := parts[1]

	if len(keyPath) != 2 {
		return fmt.Errorf("invalid key format: expected 'section.key'")
	}

	section := keyPath[0]
	key := keyPath[1]

	switch section {
	case "service":
		switch key {
		case "base_url":
			a.cfg.Service.BaseURL = value
		case "api_version":
			if _, err := models.ParseAPIVersion(value); err != nil {
				return err
			}
			a.cfg.Service.APIVersion = value
		case "timeout_seconds":
			var timeout int
			if _, err := fmt.Sscanf(value, "%d", &timeout); err != nil {
				return fmt.Errorf("invalid timeout_seconds value: %s", value)
			}
			a.cfg.Service.TimeoutSeconds = timeout
		case "download_dir":
			a.cfg.Service.DownloadDir = value
		default:
			return fmt.Errorf("unknown service key: %s", key)
		}
	case "ui":
		switch key {
		case "theme":
			if value != "dark" && value != "light" {
				return fmt.Errorf("invalid theme %q (expected dark or light)", value)
			}
			a.cfg.UI.Theme = value
		default:
			return fmt.Errorf("unknown ui key: %s", key)
		}
	case "watch":
		switch key {
		case "interval_seconds":
			var interval int
			if _, err := fmt.Sscanf(value, "%d", &interval); err != nil {
				return fmt.Errorf("invalid interval_seconds value: %s", value)
			}
			a.cfg.Watch.IntervalSeconds = interval
		default:
			return fmt.Errorf("unknown watch key: %s", key)
		}
	default:
		return fmt.Errorf("unknown section: %s", section)
	}

	return config.Save(a.cfg)
}
