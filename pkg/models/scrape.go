package models

import "fmt"

// APIVersion selects which scrape service contract the client speaks.
type APIVersion string

const (
	// APIv2 is the typed contract: records carry a type tag and source
	// URL, and the response includes server-computed totals.
	APIv2 APIVersion = "v2"
	// APIv1 is the legacy contract: two independently ordered and
	// deduplicated arrays with no source attribution.
	APIv1 APIVersion = "v1"
)

// ParseAPIVersion validates a version string from config or flags.
func ParseAPIVersion(s string) (APIVersion, error) {
	switch APIVersion(s) {
	case APIv2, APIv1:
		return APIVersion(s), nil
	}
	return "", fmt.Errorf("unknown api version %q (expected v1 or v2)", s)
}

// ContactType tags an extracted value. The service emits exactly two kinds.
type ContactType string

const (
	ContactEmail ContactType = "Email"
	ContactPhone ContactType = "Phone"
)

// ScrapeRequest is the JSON body for POST /scrape.
type ScrapeRequest struct {
	URLs []string `json:"urls"`
}

// Contact is one extracted item together with the page it came from.
type Contact struct {
	Type   ContactType `json:"type"`
	Value  string      `json:"value"`
	Source string      `json:"source"`
}

// Summary holds the totals the service computed for one scrape run.
type Summary struct {
	TotalEmails      int `json:"total_emails"`
	TotalPhones      int `json:"total_phones"`
	TotalURLsScraped int `json:"total_urls_scraped"`
}

// ScrapeResponse is the typed (v2) response for POST /scrape.
type ScrapeResponse struct {
	Success bool      `json:"success"`
	Data    []Contact `json:"data"`
	Summary Summary   `json:"summary"`
}

// LegacyScrapeResponse is the v1 response. The two lists are not linked
// to each other or to the submitted URLs in any way.
type LegacyScrapeResponse struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// APIError is the body the service sends with any non-2xx status.
type APIError struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// LegacyPair is one display row of a v1 result: the i-th email next to
// the i-th phone. Either cell is blank when its list is the shorter one.
type LegacyPair struct {
	Email string
	Phone string
}

// ResultSet is the single current result set held by the client. It is
// replaced wholesale by each successful scrape and discarded on clear;
// it is never persisted locally.
type ResultSet struct {
	Version  APIVersion
	Contacts []Contact // v2 rows
	Summary  Summary   // v2 totals, zero for v1
	Pairs    []LegacyPair
}

// NewResultSet builds a result set from a typed response.
func NewResultSet(resp *ScrapeResponse) *ResultSet {
	return &ResultSet{
		Version:  APIv2,
		Contacts: resp.Data,
		Summary:  resp.Summary,
	}
}

// NewLegacyResultSet zips a v1 response into display rows by position.
func NewLegacyResultSet(resp *LegacyScrapeResponse) *ResultSet {
	n := len(resp.Emails)
	if len(resp.Phones) > n {
		n = len(resp.Phones)
	}
	pairs := make([]LegacyPair, n)
	for i := range pairs {
		if i < len(resp.Emails) {
			pairs[i].Email = resp.Emails[i]
		}
		if i < len(resp.Phones) {
			pairs[i].Phone = resp.Phones[i]
		}
	}
	return &ResultSet{Version: APIv1, Pairs: pairs}
}

// Len reports the number of display rows.
func (rs *ResultSet) Len() int {
	if rs.Version == APIv1 {
		return len(rs.Pairs)
	}
	return len(rs.Contacts)
}

// Empty reports whether the scrape produced no rows at all.
func (rs *ResultSet) Empty() bool {
	return rs == nil || rs.Len() == 0
}

// ContactList flattens the set into typed contacts. For v1 results the
// source is unknown and left blank; blank cells are skipped.
func (rs *ResultSet) ContactList() []Contact {
	if rs == nil {
		return nil
	}
	if rs.Version != APIv1 {
		return rs.Contacts
	}
	out := make([]Contact, 0, len(rs.Pairs)*2)
	for _, p := range rs.Pairs {
		if p.Email != "" {
			out = append(out, Contact{Type: ContactEmail, Value: p.Email})
		}
	}
	for _, p := range rs.Pairs {
		if p.Phone != "" {
			out = append(out, Contact{Type: ContactPhone, Value: p.Phone})
		}
	}
	return out
}
