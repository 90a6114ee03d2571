package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLegacyResultSetZipsByPosition(t *testing.T) {
	tests := []struct {
		name   string
		emails []string
		phones []string
		want   []LegacyPair
	}{
		{
			name:   "more emails than phones",
			emails: []string{"a@x.com", "b@y.com"},
			phones: []string{"555-0100"},
			want: []LegacyPair{
				{Email: "a@x.com", Phone: "555-0100"},
				{Email: "b@y.com", Phone: ""},
			},
		},
		{
			name:   "more phones than emails",
			emails: []string{"a@x.com"},
			phones: []string{"555-0100", "555-0101", "555-0102"},
			want: []LegacyPair{
				{Email: "a@x.com", Phone: "555-0100"},
				{Email: "", Phone: "555-0101"},
				{Email: "", Phone: "555-0102"},
			},
		},
		{
			name:   "both empty",
			emails: nil,
			phones: nil,
			want:   []LegacyPair{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := NewLegacyResultSet(&LegacyScrapeResponse{Emails: tt.emails, Phones: tt.phones})
			assert.Equal(t, APIv1, rs.Version)
			assert.Equal(t, tt.want, rs.Pairs)
			assert.Equal(t, len(tt.want), rs.Len())
		})
	}
}

func TestDecodeTypedResponse(t *testing.T) {
	body := `{
		"success": true,
		"data": [{"type": "Email", "value": "info@example.com", "source": "https://example.com"}],
		"summary": {"total_emails": 1, "total_phones": 0, "total_urls_scraped": 1}
	}`

	var resp ScrapeResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, ContactEmail, resp.Data[0].Type)
	assert.Equal(t, "info@example.com", resp.Data[0].Value)
	assert.Equal(t, "https://example.com", resp.Data[0].Source)
	assert.Equal(t, 1, resp.Summary.TotalEmails)
	assert.Equal(t, 0, resp.Summary.TotalPhones)
	assert.Equal(t, 1, resp.Summary.TotalURLsScraped)

	rs := NewResultSet(&resp)
	assert.Equal(t, APIv2, rs.Version)
	assert.False(t, rs.Empty())
	assert.Equal(t, resp.Data, rs.Contacts)
}

func TestResultSetEmpty(t *testing.T) {
	var nilSet *ResultSet
	assert.True(t, nilSet.Empty())
	assert.True(t, NewResultSet(&ScrapeResponse{Success: true}).Empty())
	assert.True(t, NewLegacyResultSet(&LegacyScrapeResponse{}).Empty())
}

func TestContactListFlattensLegacyPairs(t *testing.T) {
	rs := NewLegacyResultSet(&LegacyScrapeResponse{
		Emails: []string{"a@x.com"},
		Phones: []string{"555-0100", "555-0101"},
	})

	got := rs.ContactList()
	require.Len(t, got, 3)
	assert.Equal(t, Contact{Type: ContactEmail, Value: "a@x.com"}, got[0])
	assert.Equal(t, Contact{Type: ContactPhone, Value: "555-0100"}, got[1])
	assert.Equal(t, Contact{Type: ContactPhone, Value: "555-0101"}, got[2])
}

func TestParseAPIVersion(t *testing.T) {
	v, err := ParseAPIVersion("v2")
	require.NoError(t, err)
	assert.Equal(t, APIv2, v)

	v, err = ParseAPIVersion("v1")
	require.NoError(t, err)
	assert.Equal(t, APIv1, v)

	_, err = ParseAPIVersion("v3")
	assert.Error(t, err)
}

func TestDownloadFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    DownloadFormat
		wantExt string
		wantErr bool
	}{
		{in: "excel", want: FormatExcel, wantExt: ".xlsx"},
		{in: "csv", want: FormatCSV, wantExt: ".csv"},
		{in: "json", want: FormatJSON, wantExt: ".json"},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseDownloadFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
			assert.Equal(t, tt.wantExt, f.Ext())
		})
	}
}
