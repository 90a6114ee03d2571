package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL trims and validates a single URL, assuming https when no
// scheme is given. It returns the normalized value or an error.
func ValidateURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("URL is required")
	}
	s = EnsureScheme(s)
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", raw)
	}
	return s, nil
}

// EnsureScheme prefixes bare host names with https:// so users can type
// example.com and still get a fetchable URL.
func EnsureScheme(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "https://" + s
}

// SplitURLLines turns free-form multi-line input into the URL list sent to
// the scrape service: one URL per line, each trimmed, blank lines dropped,
// original order preserved.
func SplitURLLines(raw string) []string {
	var urls []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}

// CheckURLLines is the advisory per-keystroke check behind the input box.
// It reports the first line that does not parse as a URL once a scheme is
// assumed. A nil result means no visible problem; it never blocks a submit.
func CheckURLLines(raw string) error {
	for _, line := range SplitURLLines(raw) {
		u, err := url.Parse(EnsureScheme(line))
		if err != nil {
			return fmt.Errorf("invalid URL: %s", line)
		}
		if u.Host == "" {
			return fmt.Errorf("invalid URL: %s", line)
		}
	}
	return nil
}
