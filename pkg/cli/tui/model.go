package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvraju56/web-scraper/pkg/cli/logger"
	"github.com/vvraju56/web-scraper/pkg/config"
	"github.com/vvraju56/web-scraper/pkg/models"
	"github.com/vvraju56/web-scraper/pkg/scraper"
	"github.com/vvraju56/web-scraper/pkg/session"
	"github.com/vvraju56/web-scraper/pkg/utils"
)

// counterTickInterval drives redraws while the summary counters animate.
const counterTickInterval = 33 * time.Millisecond

// scrapeModel is the Bubble Tea model for the scrape view.
type scrapeModel struct {
	// Core dependencies
	cfg    *config.Config
	client *scraper.Client
	ctrl   *session.Controller

	// Components
	input   textarea.Model
	spin    spinner.Model
	table   *resultsTable
	summary *summaryPanel
	styles  *styles

	// Transient display state
	inputWarn   string
	errMsg      string
	infoMsg     string
	successMsg  string
	pendingURLs int
	downloading bool
	format      models.DownloadFormat

	width  int
	height int
}

// Messages for scrape and download results.
type scrapeDoneMsg struct {
	seq uint64
	set *models.ResultSet
	err error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type counterTickMsg time.Time

// NewScrapeModel assembles the scrape view.
func NewScrapeModel(cfg *config.Config, client *scraper.Client) tea.Model {
	input := textarea.New()
	input.Placeholder = "https://example.com (one URL per line)"
	input.Focus()
	input.CharLimit = 0
	input.SetWidth(70)
	input.SetHeight(5)
	input.ShowLineNumbers = false

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &scrapeModel{
		cfg:     cfg,
		client:  client,
		ctrl:    session.NewController(),
		input:   input,
		spin:    spin,
		table:   newResultsTable(),
		summary: &summaryPanel{},
		styles:  newStyles(cfg.DarkMode()),
		format:  models.FormatExcel,
	}
}

// Init implements tea.Model.
func (m *scrapeModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *scrapeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(min(70, msg.Width-4))
		m.table.SetSize(msg.Width-2, max(6, msg.Height-18))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.ctrl.InFlight() || m.downloading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case scrapeDoneMsg:
		return m.handleScrapeDone(msg)

	case counterTickMsg:
		if m.summary.Animating(time.Now()) {
			return m, m.tickCounters()
		}
		return m, nil

	case downloadDoneMsg:
		m.downloading = false
		if msg.err != nil {
			m.errMsg = userFacingError(msg.err).Error()
			logger.LogError(msg.err, "download failed")
			return m, nil
		}
		m.successMsg = "Saved " + msg.path
		return m, nil
	}

	return m.routeToInput(msg)
}

func (m *scrapeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+s":
		return m.submit()
	case "ctrl+x":
		m.clear()
		return m, nil
	case "ctrl+d":
		return m.download()
	case "ctrl+t":
		m.toggleTheme()
		return m, nil
	case "ctrl+f":
		m.cycleFormat()
		return m, nil
	case "pgup", "pgdown", "home", "end":
		// Scrolling belongs to the results viewport; arrows stay with
		// the input so cursor movement keeps working.
		return m, m.table.Update(msg)
	}

	return m.routeToInput(msg)
}

func (m *scrapeModel) routeToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Advisory per-keystroke check; it colors a hint but never blocks
	// a submit.
	if err := utils.CheckURLLines(m.input.Value()); err != nil {
		m.inputWarn = err.Error()
	} else {
		m.inputWarn = ""
	}

	return m, cmd
}

// submit is the only place a scrape starts. The controller rejects it
// while another scrape is in flight, so mashing the key cannot fire
// duplicate requests.
func (m *scrapeModel) submit() (tea.Model, tea.Cmd) {
	sub, err := m.ctrl.Begin(m.input.Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.infoMsg = ""
	m.successMsg = ""
	m.pendingURLs = len(sub.URLs)
	m.summary.Reset()
	logger.Info("scrape submitted", "session", sub.SessionID, "seq", sub.Seq, "urls", len(sub.URLs))

	return m, tea.Batch(m.spin.Tick, m.runScrape(sub))
}

// runScrape performs the scrape in the background and reports back with
// the sequence number so stale completions can be told apart.
func (m *scrapeModel) runScrape(sub *session.Submission) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		start := time.Now()
		set, err := client.SubmitSet(context.Background(), sub.URLs)
		logger.Debug("scrape call finished", "seq", sub.Seq, "duration", time.Since(start))
		return scrapeDoneMsg{seq: sub.Seq, set: set, err: err}
	}
}

func (m *scrapeModel) handleScrapeDone(msg scrapeDoneMsg) (tea.Model, tea.Cmd) {
	switch m.ctrl.Complete(msg.seq, msg.set, msg.err) {
	case session.OutcomeStale:
		// A clear or newer submission won; this result is dropped.
		logger.Debug("discarded stale scrape completion", "seq", msg.seq)
		return m, nil

	case session.OutcomeFailed:
		m.errMsg = userFacingError(msg.err).Error()
		logger.LogError(msg.err, "scrape failed")
		return m, nil
	}

	m.table.SetResults(msg.set)
	logger.Info("scrape rendered", "rows", msg.set.Len())

	if msg.set.Empty() {
		m.infoMsg = "No results found. The scraped pages expose no contact data."
		return m, nil
	}

	if msg.set.Version == models.APIv2 {
		m.summary.Start(msg.set.Summary, time.Now())
		return m, m.tickCounters()
	}
	return m, nil
}

func (m *scrapeModel) tickCounters() tea.Cmd {
	return tea.Tick(counterTickInterval, func(t time.Time) tea.Msg {
		return counterTickMsg(t)
	})
}

// clear wipes input, results and messages in one step. A scrape still
// in flight is abandoned; its late completion lands as stale.
func (m *scrapeModel) clear() {
	m.ctrl.Clear()
	m.input.Reset()
	m.input.Focus()
	m.table.SetResults(nil)
	m.summary.Reset()
	m.inputWarn = ""
	m.errMsg = ""
	m.infoMsg = ""
	m.successMsg = ""
	m.pendingURLs = 0
}

func (m *scrapeModel) download() (tea.Model, tea.Cmd) {
	if m.downloading {
		return m, nil
	}
	if !m.ctrl.CanDownload() {
		m.errMsg = "Nothing to download yet. Run a scrape first."
		return m, nil
	}

	m.downloading = true
	m.errMsg = ""
	m.successMsg = ""

	client, format, dir := m.client, m.format, m.cfg.Service.DownloadDir
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		path, err := client.Download(context.Background(), format, dir)
		return downloadDoneMsg{path: path, err: err}
	})
}

// cycleFormat steps through the export formats the legacy service
// offers. The typed service only generates Excel workbooks.
func (m *scrapeModel) cycleFormat() {
	if m.client.Version() != models.APIv1 {
		return
	}
	switch m.format {
	case models.FormatExcel:
		m.format = models.FormatCSV
	case models.FormatCSV:
		m.format = models.FormatJSON
	default:
		m.format = models.FormatExcel
	}
}

// toggleTheme flips the palette and persists the choice so the next
// start comes up in the same theme.
func (m *scrapeModel) toggleTheme() {
	m.cfg.ToggleTheme()
	m.styles = newStyles(m.cfg.DarkMode())
	if err := config.Save(m.cfg); err != nil {
		logger.LogError(err, "failed to persist theme")
	}
}

// View implements tea.Model.
func (m *scrapeModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.renderTitle("Web Scraper"))

	b.WriteString(m.styles.fieldLabel.Render("URLs (one per line):"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.inputWarn != "" {
		b.WriteString(m.styles.renderWarning(m.inputWarn))
		b.WriteString("\n")
	}

	switch m.ctrl.Phase() {
	case session.PhaseSubmitting:
		label := "URL"
		if m.pendingURLs != 1 {
			label = "URLs"
		}
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.info.Render(fmt.Sprintf("Scraping %d %s...", m.pendingURLs, label)))
		b.WriteString("\n")

	case session.PhaseFailed:
		b.WriteString("\n")
		b.WriteString(m.styles.renderError(m.errMsg))
		b.WriteString("\n")

	case session.PhaseRendered:
		b.WriteString(m.renderResults())
	}

	if m.errMsg != "" && m.ctrl.Phase() != session.PhaseFailed {
		b.WriteString("\n")
		b.WriteString(m.styles.renderError(m.errMsg))
		b.WriteString("\n")
	}
	if m.infoMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.info.Render(m.infoMsg))
		b.WriteString("\n")
	}
	if m.successMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.renderSuccess(m.successMsg))
		b.WriteString("\n")
	}

	if m.downloading {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.info.Render("Downloading..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m *scrapeModel) renderResults() string {
	var b strings.Builder
	now := time.Now()

	if m.summary.Active() {
		b.WriteString("\n")
		b.WriteString(m.summary.View(now, m.styles))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.table.View(m.styles))
	b.WriteString("\n")
	return b.String()
}

// helpLine lists the keys that do something right now. Download only
// appears after a successful scrape produced rows.
func (m *scrapeModel) helpLine() string {
	hints := []string{"[ctrl+s] scrape"}
	if m.ctrl.CanDownload() {
		hints = append(hints, fmt.Sprintf("[ctrl+d] download %s", m.format))
		if m.client.Version() == models.APIv1 {
			hints = append(hints, "[ctrl+f] format")
		}
	}
	if m.ctrl.Phase() == session.PhaseRendered || m.input.Value() != "" {
		hints = append(hints, "[ctrl+x] clear")
	}
	hints = append(hints, "[ctrl+t] theme", "[esc] quit")
	return strings.Join(hints, "  ")
}
