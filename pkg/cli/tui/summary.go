package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvraju56/web-scraper/pkg/models"
)

// summaryPanel shows the three server-computed totals as animated
// count-up boxes. Each counter runs independently; the targets come
// straight from the scrape summary and are never derived from rows.
type summaryPanel struct {
	emails Counter
	phones Counter
	pages  Counter
	active bool
}

// Start arms the counters toward the totals of a fresh scrape.
func (p *summaryPanel) Start(s models.Summary, now time.Time) {
	p.emails = NewCounter(s.TotalEmails, now)
	p.phones = NewCounter(s.TotalPhones, now)
	p.pages = NewCounter(s.TotalURLsScraped, now)
	p.active = true
}

// Reset hides the panel until the next scrape.
func (p *summaryPanel) Reset() {
	p.active = false
}

// Active reports whether the panel has totals to show.
func (p *summaryPanel) Active() bool {
	return p.active
}

// Animating reports whether any counter is still counting at now.
func (p *summaryPanel) Animating(now time.Time) bool {
	if !p.active {
		return false
	}
	return !p.emails.Done(now) || !p.phones.Done(now) || !p.pages.Done(now)
}

// View renders the counter boxes at now.
func (p *summaryPanel) View(now time.Time, st *styles) string {
	if !p.active {
		return ""
	}

	boxes := []string{
		p.renderBox(st, p.emails.ValueAt(now), "Emails Found"),
		p.renderBox(st, p.phones.ValueAt(now), "Phone Numbers"),
		p.renderBox(st, p.pages.ValueAt(now), "Pages Scraped"),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (p *summaryPanel) renderBox(st *styles, value int, label string) string {
	content := st.counterValue.Render(fmt.Sprintf("%d", value)) + "\n" + st.counterLabel.Render(label)
	return st.counterBox.Render(content)
}
