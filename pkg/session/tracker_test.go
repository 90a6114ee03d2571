package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvraju56/web-scraper/pkg/models"
)

func TestTrackerReportsEachValueOnce(t *testing.T) {
	tr := NewTracker()

	first := tr.Diff(typedSet(
		models.Contact{Type: models.ContactEmail, Value: "a@x.com", Source: "https://x.com"},
		models.Contact{Type: models.ContactPhone, Value: "555-0100", Source: "https://x.com"},
	))
	require.Len(t, first, 2)

	// Second poll returns the same values plus one new phone.
	second := tr.Diff(typedSet(
		models.Contact{Type: models.ContactEmail, Value: "a@x.com", Source: "https://x.com"},
		models.Contact{Type: models.ContactPhone, Value: "555-0100", Source: "https://x.com"},
		models.Contact{Type: models.ContactPhone, Value: "555-0199", Source: "https://x.com"},
	))
	require.Len(t, second, 1)
	assert.Equal(t, "555-0199", second[0].Value)

	assert.Equal(t, 1, tr.Count(models.ContactEmail))
	assert.Equal(t, 2, tr.Count(models.ContactPhone))
}

func TestTrackerKeysValuesByType(t *testing.T) {
	tr := NewTracker()

	fresh := tr.Diff(typedSet(
		models.Contact{Type: models.ContactEmail, Value: "shared"},
		models.Contact{Type: models.ContactPhone, Value: "shared"},
	))

	assert.Len(t, fresh, 2)
}

func TestTrackerHandlesLegacySets(t *testing.T) {
	tr := NewTracker()

	set := models.NewLegacyResultSet(&models.LegacyScrapeResponse{
		Emails: []string{"a@x.com"},
		Phones: []string{"555-0100"},
	})

	fresh := tr.Diff(set)
	require.Len(t, fresh, 2)
	assert.Empty(t, tr.Diff(set))
}
