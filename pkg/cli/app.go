package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvraju56/web-scraper/pkg/cli/tui"
	"github.com/vvraju56/web-scraper/pkg/config"
	"github.com/vvraju56/web-scraper/pkg/models"
	"github.com/vvraju56/web-scraper/pkg/scraper"
)

// App wires the loaded configuration to the scrape service client and
// hosts the command entry points.
type App struct {
	cfg    *config.Config
	client *scraper.Client
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Client returns the scrape service client, creating it if necessary
func (a *App) Client() (*scraper.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	if a.cfg.Service.BaseURL == "" {
		return nil, fmt.Errorf("service base URL not configured")
	}
	version, err := models.ParseAPIVersion(a.cfg.Service.APIVersion)
	if err != nil {
		return nil, err
	}

	a.client = scraper.New(a.cfg.Service.BaseURL, version, a.cfg.Timeout())
	return a.client, nil
}

// RunTUI starts the interactive scrape view.
func (a *App) RunTUI() error {
	client, err := a.Client()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewScrapeModel(a.cfg, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}

// userMessage strips transport detail off client errors so command
// output stays readable.
func userMessage(err error) error {
	var clientErr *scraper.ClientError
	if errors.As(err, &clientErr) {
		return errors.New(clientErr.UserMessage())
	}
	return err
}
