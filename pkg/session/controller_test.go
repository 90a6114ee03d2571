package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvraju56/web-scraper/pkg/models"
)

func typedSet(contacts ...models.Contact) *models.ResultSet {
	return models.NewResultSet(&models.ScrapeResponse{
		Success: true,
		Data:    contacts,
		Summary: models.Summary{TotalURLsScraped: 1},
	})
}

func TestBeginRejectsEmptyInput(t *testing.T) {
	c := NewController()

	for _, raw := range []string{"", "   ", "\n\n", " \n\t\n "} {
		sub, err := c.Begin(raw)
		assert.Nil(t, sub)
		assert.ErrorIs(t, err, ErrNoURLs)
	}

	assert.Equal(t, PhaseIdle, c.Phase())
	assert.False(t, c.InFlight())
}

func TestBeginSplitsAndNormalizesLines(t *testing.T) {
	c := NewController()

	sub, err := c.Begin("  https://example.com  \n\n example.org \n")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com", "example.org"}, sub.URLs)
	assert.NotEmpty(t, sub.SessionID)
	assert.Equal(t, PhaseSubmitting, c.Phase())
	assert.True(t, c.InFlight())
}

func TestBeginGuardsAgainstDoubleSubmit(t *testing.T) {
	c := NewController()

	first, err := c.Begin("https://example.com")
	require.NoError(t, err)

	// Repeated submits while the first is in flight are rejected and
	// do not disturb the running submission.
	for i := 0; i < 3; i++ {
		sub, err := c.Begin("https://example.org")
		assert.Nil(t, sub)
		assert.ErrorIs(t, err, ErrScrapeInFlight)
	}

	outcome := c.Complete(first.Seq, typedSet(), nil)
	assert.Equal(t, OutcomeRendered, outcome)
	assert.False(t, c.InFlight())
}

func TestCompleteRendersResults(t *testing.T) {
	c := NewController()

	sub, err := c.Begin("https://example.com")
	require.NoError(t, err)

	set := typedSet(models.Contact{Type: models.ContactEmail, Value: "a@x.com", Source: "https://example.com"})
	outcome := c.Complete(sub.Seq, set, nil)

	assert.Equal(t, OutcomeRendered, outcome)
	assert.Equal(t, PhaseRendered, c.Phase())
	assert.Same(t, set, c.Current())
	assert.True(t, c.CanDownload())
	assert.NoError(t, c.LastError())
}

func TestCompleteWithEmptySetDisablesDownload(t *testing.T) {
	c := NewController()

	sub, err := c.Begin("https://example.com")
	require.NoError(t, err)

	outcome := c.Complete(sub.Seq, typedSet(), nil)
	assert.Equal(t, OutcomeRendered, outcome)
	assert.False(t, c.CanDownload())
}

func TestCompleteWithErrorFails(t *testing.T) {
	c := NewController()

	sub, err := c.Begin("https://example.com")
	require.NoError(t, err)

	scrapeErr := errors.New("Invalid URL: https://example.com")
	outcome := c.Complete(sub.Seq, nil, scrapeErr)

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, PhaseFailed, c.Phase())
	assert.ErrorIs(t, c.LastError(), scrapeErr)
	assert.False(t, c.CanDownload())
	assert.False(t, c.InFlight())
}

func TestClearDuringFlightMakesCompletionStale(t *testing.T) {
	c := NewController()

	sub, err := c.Begin("https://example.com")
	require.NoError(t, err)

	c.Clear()
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.False(t, c.InFlight())

	// The abandoned submission finishes after the clear; nothing of it
	// may leak into the fresh state.
	outcome := c.Complete(sub.Seq, typedSet(models.Contact{Type: models.ContactEmail, Value: "late@x.com"}), nil)
	assert.Equal(t, OutcomeStale, outcome)
	assert.Nil(t, c.Current())
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestLatestSubmissionWinsOverSupersededOne(t *testing.T) {
	c := NewController()

	first, err := c.Begin("https://old.example.com")
	require.NoError(t, err)

	c.Clear()

	second, err := c.Begin("https://new.example.com")
	require.NoError(t, err)

	oldSet := typedSet(models.Contact{Type: models.ContactEmail, Value: "old@x.com"})
	newSet := typedSet(models.Contact{Type: models.ContactEmail, Value: "new@x.com"})

	// Completions arrive out of order: the new one first, the
	// abandoned one afterwards.
	assert.Equal(t, OutcomeRendered, c.Complete(second.Seq, newSet, nil))
	assert.Equal(t, OutcomeStale, c.Complete(first.Seq, oldSet, nil))

	assert.Same(t, newSet, c.Current())
}

func TestCompleteIsIdempotentPerSubmission(t *testing.T) {
	c := NewController()

	sub, err := c.Begin("https://example.com")
	require.NoError(t, err)

	set := typedSet(models.Contact{Type: models.ContactPhone, Value: "555-0100"})
	assert.Equal(t, OutcomeRendered, c.Complete(sub.Seq, set, nil))
	assert.Equal(t, OutcomeStale, c.Complete(sub.Seq, typedSet(), nil))
	assert.Same(t, set, c.Current())
}

func TestClearResetsResults(t *testing.T) {
	c := NewController()

	sub, err := c.Begin("https://example.com")
	require.NoError(t, err)
	c.Complete(sub.Seq, typedSet(models.Contact{Type: models.ContactEmail, Value: "a@x.com"}), nil)
	require.True(t, c.CanDownload())

	c.Clear()

	assert.Nil(t, c.Current())
	assert.False(t, c.CanDownload())
	assert.Equal(t, PhaseIdle, c.Phase())

	// A new scrape works normally after clearing.
	sub2, err := c.Begin("https://example.org")
	require.NoError(t, err)
	assert.Greater(t, sub2.Seq, sub.Seq)
}

func TestFailureKeepsPreviousResultsButHidesDownload(t *testing.T) {
	c := NewController()

	sub, err := c.Begin("https://example.com")
	require.NoError(t, err)
	set := typedSet(models.Contact{Type: models.ContactEmail, Value: "a@x.com"})
	c.Complete(sub.Seq, set, nil)

	sub2, err := c.Begin("https://example.org")
	require.NoError(t, err)
	c.Complete(sub2.Seq, nil, errors.New("boom"))

	// The old set is still held but no longer offered for download;
	// exports reflect the last successful server-side scrape only.
	assert.Same(t, set, c.Current())
	assert.False(t, c.CanDownload())
	assert.Equal(t, PhaseFailed, c.Phase())
}
