package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvraju56/web-scraper/pkg/models"
)

// Type indicator colors are fixed per contact type, independent of the
// active theme.
var (
	colorEmail   = lipgloss.Color("39")  // blue
	colorPhone   = lipgloss.Color("42")  // green
	colorUnknown = lipgloss.Color("244") // gray
)

// palette is the color set one theme draws from.
type palette struct {
	primary lipgloss.Color
	success lipgloss.Color
	failure lipgloss.Color
	warning lipgloss.Color
	info    lipgloss.Color
	muted   lipgloss.Color
	border  lipgloss.Color
	text    lipgloss.Color
}

var darkPalette = palette{
	primary: lipgloss.Color("62"),  // purple/blue
	success: lipgloss.Color("42"),  // green
	failure: lipgloss.Color("196"), // red
	warning: lipgloss.Color("214"), // orange
	info:    lipgloss.Color("39"),  // cyan
	muted:   lipgloss.Color("240"), // dark gray
	border:  lipgloss.Color("238"),
	text:    lipgloss.Color("252"),
}

var lightPalette = palette{
	primary: lipgloss.Color("56"),
	success: lipgloss.Color("28"),
	failure: lipgloss.Color("160"),
	warning: lipgloss.Color("130"),
	info:    lipgloss.Color("25"),
	muted:   lipgloss.Color("245"),
	border:  lipgloss.Color("250"),
	text:    lipgloss.Color("235"),
}

// styles bundles every lipgloss style the scrape view uses, built from
// one palette so the whole theme can flip at runtime.
type styles struct {
	dark bool

	title      lipgloss.Style
	bold       lipgloss.Style
	muted      lipgloss.Style
	success    lipgloss.Style
	failure    lipgloss.Style
	warning    lipgloss.Style
	info       lipgloss.Style
	fieldLabel lipgloss.Style
	help       lipgloss.Style
	divider    lipgloss.Style

	tableHeader lipgloss.Style
	tableBorder lipgloss.Style
	email       lipgloss.Style
	phone       lipgloss.Style
	unknown     lipgloss.Style

	counterBox   lipgloss.Style
	counterValue lipgloss.Style
	counterLabel lipgloss.Style
}

func newStyles(dark bool) *styles {
	p := darkPalette
	if !dark {
		p = lightPalette
	}

	return &styles{
		dark: dark,

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginBottom(1),

		bold: lipgloss.NewStyle().Bold(true),

		muted: lipgloss.NewStyle().
			Foreground(p.muted),

		success: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),

		failure: lipgloss.NewStyle().
			Foreground(p.failure).
			Bold(true),

		warning: lipgloss.NewStyle().
			Foreground(p.warning),

		info: lipgloss.NewStyle().
			Foreground(p.info),

		fieldLabel: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginRight(2),

		help: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),

		divider: lipgloss.NewStyle().
			Foreground(p.border),

		tableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),

		tableBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border),

		email:   lipgloss.NewStyle().Foreground(colorEmail),
		phone:   lipgloss.NewStyle().Foreground(colorPhone),
		unknown: lipgloss.NewStyle().Foreground(colorUnknown),

		counterBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 2).
			Align(lipgloss.Center),

		counterValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.info),

		counterLabel: lipgloss.NewStyle().
			Foreground(p.muted),
	}
}

// Helper functions for common formatting patterns
func (s *styles) renderTitle(title string) string {
	return "\n" + s.title.Render(title) + "\n"
}

func (s *styles) renderSuccess(msg string) string {
	return s.success.Render("✓ " + msg)
}

func (s *styles) renderError(msg string) string {
	return s.failure.Render("❌ " + msg)
}

func (s *styles) renderWarning(msg string) string {
	return s.warning.Render("⚠ " + msg)
}

func (s *styles) renderDivider(length int) string {
	return s.divider.Render(strings.Repeat("─", length))
}

// typeStyle returns the fixed style for a contact type indicator.
func (s *styles) typeStyle(t models.ContactType) lipgloss.Style {
	switch t {
	case models.ContactEmail:
		return s.email
	case models.ContactPhone:
		return s.phone
	default:
		return s.unknown
	}
}
