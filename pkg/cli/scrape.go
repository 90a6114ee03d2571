package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/vvraju56/web-scraper/pkg/cli/logger"
	"github.com/vvraju56/web-scraper/pkg/cli/results"
	"github.com/vvraju56/web-scraper/pkg/session"
)

// RunScrape submits the given URLs once and prints the extracted
// contacts as a table. URLs come from the arguments, from a file, or
// from stdin, one per line.
func (a *App) RunScrape(urls []string, file string) error {
	client, err := a.Client()
	if err != nil {
		return err
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read URL file: %w", err)
		}
		urls = append(urls, strings.Split(string(data), "\n")...)
	}
	if len(urls) == 0 {
		stdinURLs, err := readURLsFromStdin()
		if err != nil {
			return err
		}
		urls = stdinURLs
	}

	// The controller applies the same trim/blank-filter rules the
	// interactive view uses, so both paths send identical requests.
	ctrl := session.NewController()
	sub, err := ctrl.Begin(strings.Join(urls, "\n"))
	if err != nil {
		return err
	}
	logger.Info("scrape submitted", "session", sub.SessionID, "urls", len(sub.URLs))

	label := "URL"
	if len(sub.URLs) != 1 {
		label = "URLs"
	}
	sp := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = fmt.Sprintf(" Scraping %d %s...", len(sub.URLs), label)
	sp.Start()

	start := time.Now()
	set, scrapeErr := client.SubmitSet(context.Background(), sub.URLs)
	sp.Stop()

	if ctrl.Complete(sub.Seq, set, scrapeErr) == session.OutcomeFailed {
		logger.LogError(scrapeErr, "scrape failed")
		return userMessage(scrapeErr)
	}
	logger.Info("scrape finished", "session", sub.SessionID, "rows", set.Len(), "duration", time.Since(start))

	results.WriteToStdout(results.FormatTableOutput(set))
	return nil
}

func readURLsFromStdin() ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return urls, nil
}
