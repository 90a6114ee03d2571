package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvraju56/web-scraper/pkg/cli/results"
	"github.com/vvraju56/web-scraper/pkg/models"
)

// resultsTable renders the current result set inside a scrollable
// viewport. Column layout follows the contract version: typed rows
// carry a type indicator and source, legacy rows pair emails with
// phones by position.
type resultsTable struct {
	viewport viewport.Model
	set      *models.ResultSet
	width    int
	height   int
}

func newResultsTable() *resultsTable {
	t := &resultsTable{}
	t.viewport = viewport.New(0, 0)
	return t
}

// SetResults replaces the displayed set wholesale. Nil clears the table.
func (t *resultsTable) SetResults(set *models.ResultSet) {
	t.set = set
	t.viewport.GotoTop()
}

// SetSize updates the table dimensions
func (t *resultsTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.viewport.Width = width - 4
	t.viewport.Height = height
}

// Update handles scrolling keys routed by the parent model.
func (t *resultsTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return cmd
}

// View renders the table
func (t *resultsTable) View(st *styles) string {
	if t.set.Empty() {
		return st.tableBorder.Render(st.muted.Render("No results found"))
	}

	var content string
	if t.set.Version == models.APIv1 {
		content = t.renderLegacyRows(st)
	} else {
		content = t.renderTypedRows(st)
	}

	t.viewport.SetContent(content)
	return st.tableBorder.Render(t.viewport.View())
}

func (t *resultsTable) renderTypedRows(st *styles) string {
	valueWidth := min(40, max(20, t.width/3))
	sourceWidth := min(34, max(16, t.width/3))

	header := st.tableHeader.Render(fmt.Sprintf(
		"%-10s %-*s %-*s",
		"Type",
		valueWidth, "Value",
		sourceWidth, "Source",
	))

	rows := make([]string, 0, len(t.set.Contacts))
	for _, contact := range t.set.Contacts {
		indicator := fmt.Sprintf("%s %s", results.TypeIcon(contact.Type), results.TypeLabel(contact.Type))
		row := fmt.Sprintf(
			"%-10s %-*s %-*s",
			indicator,
			valueWidth, results.Truncate(contact.Value, valueWidth),
			sourceWidth, results.Truncate(results.ShortenURL(contact.Source), sourceWidth),
		)
		rows = append(rows, st.typeStyle(contact.Type).Render(row))
	}

	return header + "\n" + strings.Join(rows, "\n")
}

func (t *resultsTable) renderLegacyRows(st *styles) string {
	emailWidth := min(40, max(20, t.width/2))

	header := st.tableHeader.Render(fmt.Sprintf(
		"%-4s %-*s %-20s",
		"#",
		emailWidth, "Email",
		"Phone",
	))

	rows := make([]string, 0, len(t.set.Pairs))
	for i, pair := range t.set.Pairs {
		rows = append(rows, fmt.Sprintf(
			"%-4d %-*s %-20s",
			i+1,
			emailWidth, results.Truncate(pair.Email, emailWidth),
			results.Truncate(pair.Phone, 20),
		))
	}

	return header + "\n" + strings.Join(rows, "\n")
}
