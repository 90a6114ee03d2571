// Package session owns the client-side scrape state: one guarded
// submission at a time, one current result set, and sequence numbers
// that shut out completions from abandoned submissions. It knows
// nothing about terminals or HTTP, which keeps the whole lifecycle
// testable in isolation.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/vvraju56/web-scraper/pkg/models"
	"github.com/vvraju56/web-scraper/pkg/utils"
)

// Phase is where the controller sits in the submit lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseRendered
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseRendered:
		return "rendered"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Outcome reports what Complete did with a finished submission.
type Outcome int

const (
	// OutcomeStale means the submission was superseded or cleared while
	// in flight; its result was discarded without touching state.
	OutcomeStale Outcome = iota
	OutcomeRendered
	OutcomeFailed
)

var (
	// ErrNoURLs rejects a submit with nothing to scrape.
	ErrNoURLs = errors.New("Please enter at least one URL")
	// ErrScrapeInFlight rejects a submit while another one is running.
	ErrScrapeInFlight = errors.New("A scrape is already in progress")
)

// Submission identifies one accepted scrape submission.
type Submission struct {
	Seq       uint64
	SessionID string
	URLs      []string
}

// Controller is the single entry point for starting, finishing and
// clearing scrapes. All mutation goes through it; displays only read.
type Controller struct {
	mu       sync.Mutex
	seq      uint64
	inFlight bool
	phase    Phase
	current  *models.ResultSet
	lastErr  error
}

// NewController creates an idle controller with no results.
func NewController() *Controller {
	return &Controller{}
}

// Begin validates the raw multi-line input and, if another scrape is
// not already running, opens a new submission. The returned sequence
// number must be passed back to Complete.
func (c *Controller) Begin(raw string) (*Submission, error) {
	urls := utils.SplitURLLines(raw)
	if len(urls) == 0 {
		return nil, ErrNoURLs
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight {
		return nil, ErrScrapeInFlight
	}

	c.seq++
	c.inFlight = true
	c.phase = PhaseSubmitting

	return &Submission{
		Seq:       c.seq,
		SessionID: uuid.NewString(),
		URLs:      urls,
	}, nil
}

// Complete finishes the submission identified by seq. Results from a
// submission that is no longer current are discarded wholesale; the
// latest accepted submission always wins regardless of arrival order.
func (c *Controller) Complete(seq uint64, set *models.ResultSet, err error) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq || !c.inFlight {
		return OutcomeStale
	}

	c.inFlight = false

	if err != nil {
		c.phase = PhaseFailed
		c.lastErr = err
		return OutcomeFailed
	}

	c.phase = PhaseRendered
	c.current = set
	c.lastErr = nil
	return OutcomeRendered
}

// Clear drops the current result set and returns to idle. A submission
// still in flight is abandoned: bumping the sequence number guarantees
// its eventual completion lands as stale.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.inFlight = false
	c.phase = PhaseIdle
	c.current = nil
	c.lastErr = nil
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// InFlight reports whether a submission is currently running.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Current returns the result set from the last successful scrape, or
// nil when there is none.
func (c *Controller) Current() *models.ResultSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// LastError returns the error from the last failed scrape, or nil.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// CanDownload reports whether an export is worth offering: only after
// a successful scrape that actually produced rows.
func (c *Controller) CanDownload() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase == PhaseRendered && !c.current.Empty()
}
