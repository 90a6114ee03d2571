package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/vvraju56/web-scraper/pkg/cli/logger"
)

// RunHealth checks whether the scrape service answers. With a positive
// wait it keeps probing with backoff until the service comes up or the
// wait expires.
func (a *App) RunHealth(wait time.Duration) error {
	client, err := a.Client()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if wait > 0 {
		sp := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		sp.Suffix = fmt.Sprintf(" Waiting up to %s for %s...", wait, client.BaseURL())
		sp.Start()
		err = client.WaitHealthy(ctx, wait)
		sp.Stop()
		if err != nil {
			logger.LogError(err, "service did not come up")
			return userMessage(err)
		}
	}

	health, err := client.Health(ctx)
	if err != nil {
		logger.LogError(err, "health check failed")
		return userMessage(err)
	}

	fmt.Printf("✓ %s is %s (reported at %s)\n", client.BaseURL(), health.Status, health.Timestamp)
	return nil
}
