package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vvraju56/web-scraper/pkg/cli/logger"
	"github.com/vvraju56/web-scraper/pkg/cli/results"
	"github.com/vvraju56/web-scraper/pkg/config"
	"github.com/vvraju56/web-scraper/pkg/models"
	"github.com/vvraju56/web-scraper/pkg/session"
	"github.com/vvraju56/web-scraper/pkg/utils"
)

// RunWatch polls a single URL on an interval and prints each contact
// the first time it appears. It runs until interrupted.
func (a *App) RunWatch(rawURL string, interval time.Duration) error {
	urlStr, err := utils.ValidateURL(rawURL)
	if err != nil {
		return err
	}

	client, err := a.Client()
	if err != nil {
		return err
	}

	if interval <= 0 {
		interval = a.cfg.WatchInterval()
	}
	if interval < config.MinWatchInterval {
		interval = config.MinWatchInterval
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s every %s (ctrl+c to stop)\n", results.ShortenURL(urlStr), interval)
	logger.Info("watch started", "url", urlStr, "interval", interval)

	tracker := session.NewTracker()
	poll := func() {
		set, err := client.SubmitSet(ctx, []string{urlStr})
		if err != nil {
			// One failed poll must not kill the watch.
			logger.LogError(err, "watch poll failed")
			results.WriteToStderr(results.FormatErrorMessage(userMessage(err)))
			return
		}
		for _, contact := range tracker.Diff(set) {
			fmt.Println(results.FormatWatchLine(time.Now(), contact))
		}
	}

	poll()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Printf("\nStopped. Seen %d email(s) and %d phone number(s).\n",
				tracker.Count(models.ContactEmail), tracker.Count(models.ContactPhone))
			return nil
		case <-ticker.C:
			poll()
		}
	}
}
