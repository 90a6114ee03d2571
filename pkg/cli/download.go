package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/vvraju56/web-scraper/pkg/cli/logger"
	"github.com/vvraju56/web-scraper/pkg/models"
)

// RunDownload fetches the export file for the most recent scrape the
// service performed and saves it under dir.
func (a *App) RunDownload(formatStr, dir string) error {
	format, err := models.ParseDownloadFormat(formatStr)
	if err != nil {
		return err
	}

	client, err := a.Client()
	if err != nil {
		return err
	}

	if dir == "" {
		dir = a.cfg.Service.DownloadDir
	}

	sp := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " Downloading..."
	sp.Start()

	path, err := client.Download(context.Background(), format, dir)
	sp.Stop()
	if err != nil {
		logger.LogError(err, "download failed")
		return userMessage(err)
	}

	fmt.Printf("✓ Saved %s\n", path)
	return nil
}
