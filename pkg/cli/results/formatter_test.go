package results

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vvraju56/web-scraper/pkg/models"
)

func TestShortenURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "host and path",
			in:   "https://example.com/contact/about.html",
			want: "example.com/contact/about.html",
		},
		{
			name: "root path collapses to host",
			in:   "https://example.com/",
			want: "example.com",
		},
		{
			name: "no path collapses to host",
			in:   "https://example.com",
			want: "example.com",
		},
		{
			name: "query is dropped",
			in:   "https://example.com/search?q=x",
			want: "example.com/search",
		},
		{
			name: "unparsable long string is truncated",
			in:   "this is not a url at all, just a very long sentence",
			want: "this is not a url at all, just...",
		},
		{
			name: "unparsable short string kept as is",
			in:   "not-a-url",
			want: "not-a-url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortenURL(tt.in))
		})
	}
}

func TestTypeIcon(t *testing.T) {
	assert.Equal(t, "✉", TypeIcon(models.ContactEmail))
	assert.Equal(t, "☎", TypeIcon(models.ContactPhone))
	assert.Equal(t, "?", TypeIcon(models.ContactType("Fax")))
}

func TestSummaryLineUsesServerTotalsOnly(t *testing.T) {
	// Totals deliberately disagree with any row count: the line must
	// echo the summary as sent.
	line := SummaryLine(models.Summary{TotalEmails: 1, TotalPhones: 0, TotalURLsScraped: 7})
	assert.Equal(t, "Found 1 email and 0 phone numbers across 7 pages", line)

	line = SummaryLine(models.Summary{TotalEmails: 3, TotalPhones: 1, TotalURLsScraped: 1})
	assert.Equal(t, "Found 3 emails and 1 phone number across 1 page", line)
}

func TestFormatTableOutputTyped(t *testing.T) {
	set := models.NewResultSet(&models.ScrapeResponse{
		Success: true,
		Data: []models.Contact{
			{Type: models.ContactEmail, Value: "info@example.com", Source: "https://example.com/contact"},
			{Type: models.ContactPhone, Value: "555-0100", Source: "https://example.com/"},
		},
		Summary: models.Summary{TotalEmails: 1, TotalPhones: 1, TotalURLsScraped: 1},
	})

	out := FormatTableOutput(set)
	assert.Contains(t, out, "info@example.com")
	assert.Contains(t, out, "example.com/contact")
	assert.Contains(t, out, "555-0100")
	assert.Contains(t, out, "Found 1 email and 1 phone number across 1 page")
}

func TestFormatTableOutputLegacyHasNoCounters(t *testing.T) {
	set := models.NewLegacyResultSet(&models.LegacyScrapeResponse{
		Emails: []string{"a@x.com", "b@y.com"},
		Phones: []string{"555-0100"},
	})

	out := FormatTableOutput(set)
	assert.Contains(t, out, "a@x.com")
	assert.Contains(t, out, "b@y.com")
	assert.Contains(t, out, "Total: 2 row(s)")
	assert.NotContains(t, out, "Found")
}

func TestFormatTableOutputEmpty(t *testing.T) {
	set := models.NewResultSet(&models.ScrapeResponse{Success: true})
	assert.Contains(t, FormatTableOutput(set), "No results found.")
}

func TestFormatWatchLine(t *testing.T) {
	now := time.Date(2025, 3, 1, 15, 4, 5, 0, time.UTC)

	line := FormatWatchLine(now, models.Contact{Type: models.ContactEmail, Value: "a@x.com", Source: "https://x.com/team"})
	assert.True(t, strings.HasPrefix(line, "15:04:05"))
	assert.Contains(t, line, "a@x.com")
	assert.Contains(t, line, "x.com/team")

	noSource := FormatWatchLine(now, models.Contact{Type: models.ContactPhone, Value: "555-0100"})
	assert.NotContains(t, noSource, "(")
}
