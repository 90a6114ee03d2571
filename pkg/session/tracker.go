package session

import "github.com/vvraju56/web-scraper/pkg/models"

// Tracker remembers which values have already been reported so watch
// mode only surfaces new findings on each poll. Values are keyed per
// contact type; the same string appearing as both an email and a phone
// counts as two findings.
type Tracker struct {
	seen map[models.ContactType]map[string]struct{}
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[models.ContactType]map[string]struct{})}
}

// Diff returns the contacts in set that have not been seen before, in
// set order, and marks them as seen.
func (t *Tracker) Diff(set *models.ResultSet) []models.Contact {
	var fresh []models.Contact
	for _, contact := range set.ContactList() {
		values, ok := t.seen[contact.Type]
		if !ok {
			values = make(map[string]struct{})
			t.seen[contact.Type] = values
		}
		if _, dup := values[contact.Value]; dup {
			continue
		}
		values[contact.Value] = struct{}{}
		fresh = append(fresh, contact)
	}
	return fresh
}

// Count reports how many distinct values of the given type were seen.
func (t *Tracker) Count(kind models.ContactType) int {
	return len(t.seen[kind])
}
