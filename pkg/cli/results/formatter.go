package results

import (
	"fmt"
	"net/url"
	"time"

	"github.com/vvraju56/web-scraper/pkg/models"
)

// maxRawURLLen bounds how much of an unparsable source string is shown.
const maxRawURLLen = 30

// ShortenURL compacts a source URL for table display: hostname plus
// path, just the hostname for the root page. Strings that do not parse
// to a host are truncated instead.
func ShortenURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return Truncate(raw, maxRawURLLen)
	}
	if u.Path == "" || u.Path == "/" {
		return u.Host
	}
	return u.Host + u.Path
}

// Truncate cuts a string to maxLen characters and marks the cut with an
// ellipsis.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// TypeIcon maps a contact type to its fixed indicator. Types the
// service never documented get a neutral marker instead of a guess.
func TypeIcon(t models.ContactType) string {
	switch t {
	case models.ContactEmail:
		return "✉"
	case models.ContactPhone:
		return "☎"
	default:
		return "?"
	}
}

// TypeLabel is the human name rendered next to the icon.
func TypeLabel(t models.ContactType) string {
	switch t {
	case models.ContactEmail:
		return "Email"
	case models.ContactPhone:
		return "Phone"
	default:
		return string(t)
	}
}

// SummaryLine renders the server-computed totals in one sentence. The
// numbers come straight from the summary, never from counting rows.
func SummaryLine(s models.Summary) string {
	return fmt.Sprintf("Found %s and %s across %s",
		plural(s.TotalEmails, "email", "emails"),
		plural(s.TotalPhones, "phone number", "phone numbers"),
		plural(s.TotalURLsScraped, "page", "pages"))
}

// FormatWatchLine renders one new finding in watch mode.
func FormatWatchLine(now time.Time, contact models.Contact) string {
	line := fmt.Sprintf("%s  %s %-5s  %s", now.Format("15:04:05"), TypeIcon(contact.Type), TypeLabel(contact.Type), contact.Value)
	if contact.Source != "" {
		line += fmt.Sprintf("  (%s)", ShortenURL(contact.Source))
	}
	return line
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
