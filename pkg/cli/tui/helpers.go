package tui

import (
	"errors"

	"github.com/vvraju56/web-scraper/pkg/scraper"
)

// userFacingError converts structured scrape client errors into friendly
// messages, while leaving other error types unchanged.
func userFacingError(err error) error {
	if err == nil {
		return nil
	}

	var clientErr *scraper.ClientError
	if errors.As(err, &clientErr) {
		return errors.New(clientErr.UserMessage())
	}

	return err
}
